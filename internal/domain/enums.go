package domain

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ResourceType string

const (
	ResourceLink    ResourceType = "link"
	ResourceFile    ResourceType = "file"
	ResourceBook    ResourceType = "book"
	ResourceVideo   ResourceType = "video"
	ResourceArticle ResourceType = "article"
)

type AssessmentType string

const (
	AssessmentQuiz         AssessmentType = "quiz"
	AssessmentAssignment   AssessmentType = "assignment"
	AssessmentProject      AssessmentType = "project"
	AssessmentExam         AssessmentType = "exam"
	AssessmentPresentation AssessmentType = "presentation"
)

// ValidResourceTypes is the canonical set of accepted resource type strings.
// Stored records are checked against it when loaded.
var ValidResourceTypes = map[ResourceType]bool{
	ResourceLink: true, ResourceFile: true, ResourceBook: true,
	ResourceVideo: true, ResourceArticle: true,
}

// ValidAssessmentTypes is the canonical set of accepted assessment type strings.
var ValidAssessmentTypes = map[AssessmentType]bool{
	AssessmentQuiz: true, AssessmentAssignment: true, AssessmentProject: true,
	AssessmentExam: true, AssessmentPresentation: true,
}

func (t ResourceType) Valid() bool { return ValidResourceTypes[t] }

func (t AssessmentType) Valid() bool { return ValidAssessmentTypes[t] }
