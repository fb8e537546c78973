package engine

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scriptchat/internal/domain"
)

func subjectReply(subject string) string {
	return fmt.Sprintf(`Perfect! I'll help you create a curriculum for %s.

To design the most effective learning experience, I need to understand your context better:

Who is your target audience? For example:
- Age group or grade level
- Prior knowledge or experience level
- Professional background
- Any specific learning needs`, subject)
}

func audienceReply(audience string) string {
	return fmt.Sprintf(`Great! So we're designing this for %s.

Now, what's your timeframe? This helps me structure the curriculum appropriately:
- How many weeks or months do you have?
- How many hours per week?
- Are these daily sessions, weekly classes, or a different schedule?`, audience)
}

func durationReply(duration string) string {
	return fmt.Sprintf(`Excellent! With %s, we can create a well-structured curriculum.

What should your learners be able to do by the end of this curriculum? Please share your learning objectives or goals. For example:
- Specific skills they should master
- Knowledge they should gain
- Projects they should be able to complete
- Real-world applications they should understand`, duration)
}

func objectivesReply(objectives []string) string {
	return fmt.Sprintf(`Perfect! These learning objectives will guide our curriculum design:

%s

Now let's break this down into lessons. Based on your objectives and timeframe, what key topics or modules should we cover?

You can describe them however feels natural - I'll help organize them into a structured lesson plan.`, numbered(objectives, 1))
}

func lessonPlanningReply(c domain.Curriculum) string {
	lines := make([]string, len(c.Lessons))
	for i, l := range c.Lessons {
		lines[i] = l.Title + ": " + l.Description
	}
	return fmt.Sprintf(`Great start! I can see the curriculum taking shape.

Current lessons:
%s

Would you like to:
- Add more lessons or topics
- Define specific activities for these lessons
- Move on to discuss resources and materials
- Plan assessments and evaluations

Just let me know what you'd like to focus on next!`, numbered(lines, 1))
}

func continuedLessonReply(c domain.Curriculum) string {
	tail := c.Lessons
	if len(tail) > 3 {
		tail = tail[len(tail)-3:]
	}
	titles := make([]string, len(tail))
	for i, l := range tail {
		titles[i] = l.Title
	}
	return fmt.Sprintf(`Added to your lesson plan!

Current lessons (%d):
%s

Continue adding lessons or let me know when you're ready to discuss resources and materials.`,
		len(c.Lessons), numbered(titles, len(c.Lessons)-len(tail)+1))
}

func resourceReply(c domain.Curriculum) string {
	lines := make([]string, len(c.Resources))
	for i, r := range c.Resources {
		lines[i] = fmt.Sprintf("%s (%s)", r.Title, r.Type)
	}
	return fmt.Sprintf(`Excellent! Resources are crucial for effective learning.

Current resources:
%s

What other learning materials do you need? Consider:
- Textbooks or reading materials
- Online courses or videos
- Software or tools
- Hands-on materials or equipment
- Reference guides`, numbered(lines, 1))
}

func continuedResourceReply() string {
	return `Added to your resource list!

Would you like to:
- Add more resources
- Move on to plan assessments and evaluations
- Review and refine what we've built so far
- Export your curriculum`
}

func assessmentReply(c domain.Curriculum) string {
	lines := make([]string, len(c.Assessments))
	for i, a := range c.Assessments {
		lines[i] = fmt.Sprintf("%s (%s)", a.Title, a.Type)
	}
	return fmt.Sprintf(`Perfect! Assessment planning is key to measuring learning success.

Current assessments:
%s

Would you like to add more assessments or are you ready to review your complete curriculum?`, numbered(lines, 1))
}

func curriculumFinalReply(c domain.Curriculum) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Excellent work! Your curriculum for \"%s\" is really coming together.\n\n", c.Subject)
	b.WriteString("**Summary:**\n")
	fmt.Fprintf(&b, "- **Subject:** %s\n", c.Subject)
	fmt.Fprintf(&b, "- **Audience:** %s\n", c.TargetAudience)
	fmt.Fprintf(&b, "- **Duration:** %s\n", c.Duration)
	fmt.Fprintf(&b, "- **Lessons:** %d planned\n", len(c.Lessons))
	fmt.Fprintf(&b, "- **Resources:** %d identified\n", len(c.Resources))
	fmt.Fprintf(&b, "- **Assessments:** %d designed\n\n", len(c.Assessments))
	b.WriteString(`Your curriculum is ready! You can:
- Review the complete curriculum with /summary
- Make any final adjustments
- Export to share with others
- Start a new curriculum conversation

Is there anything you'd like to refine or add?`)
	return b.String()
}

func curriculumGenericReply(c domain.Curriculum) string {
	return fmt.Sprintf(`I understand. Let me help you with that aspect of your %s curriculum.

Based on what you've shared, I can help you:
- Refine your existing content
- Add new elements to the curriculum
- Reorganize the structure
- Plan implementation details

What specific aspect would you like to work on?`, domain.CoalesceStr(c.Subject, "new"))
}
