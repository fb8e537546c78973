package engine

import (
	"testing"

	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_UnknownModeReturnsSameBundle(t *testing.T) {
	d := NewDispatcher(NewSequenceIDs("id"))
	bundle := DefaultBundle(domain.ModeCurriculum)

	res := d.Process("hello", domain.Mode("legal"), bundle, nil)

	assert.Contains(t, res.Response, "not sure")
	assert.Same(t, bundle, res.Data)
}

func TestDispatcher_EmptyMessageEveryMode(t *testing.T) {
	d := NewDispatcher(NewSequenceIDs("id"))

	for _, mode := range domain.AllModes() {
		t.Run(string(mode), func(t *testing.T) {
			res := d.Process("", mode, DefaultBundle(mode), nil)
			assert.NotEmpty(t, res.Response)
			require.NotNil(t, res.Data)
			assert.NotNil(t, res.Data.Record(mode))
		})
	}
}

func TestDispatcher_NilBundleUsesDefaults(t *testing.T) {
	d := NewDispatcher(NewSequenceIDs("id"))

	res := d.Process("I want to teach Rust", domain.ModeCurriculum, nil, nil)

	require.NotNil(t, res.Data)
	require.NotNil(t, res.Data.Curriculum)
	assert.Equal(t, "Rust", res.Data.Curriculum.Subject)
	assert.Equal(t, CurriculumInitial.String(), res.Step)
}

func TestDispatcher_LeavesInputBundleUntouched(t *testing.T) {
	d := NewDispatcher(NewSequenceIDs("id"))
	bundle := DefaultBundle(domain.ModeEcom)

	res := d.Process("I'm building Cozy Candles", domain.ModeEcom, bundle, nil)

	assert.NotSame(t, bundle, res.Data)
	assert.Empty(t, bundle.TikTokShop.BusinessName)
	assert.Equal(t, "Cozy candles", res.Data.TikTokShop.BusinessName)
}

func TestDispatcher_GeneralModeHasNoStep(t *testing.T) {
	d := NewDispatcher(nil)

	res := d.Process("Tell me about tide pools", domain.ModeGeneral, DefaultBundle(domain.ModeGeneral), nil)

	assert.Empty(t, res.Step)
	assert.Equal(t, "tide pools", res.Data.GeneralChat.Topic)
}

func TestInitialGreeting(t *testing.T) {
	assert.Contains(t, InitialGreeting(domain.ModeCurriculum), "design your curriculum")
	assert.Contains(t, InitialGreeting(domain.ModeEcom), "TikTok Shop strategy")
	general := InitialGreeting(domain.ModeGeneral)
	assert.Contains(t, general, "chat")
	assert.Contains(t, general, "anything")
	assert.Equal(t, "Hello! How can I help you today?", InitialGreeting(domain.Mode("other")))
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		mode domain.Mode
		data *domain.Bundle
		want string
	}{
		{"curriculum default", domain.ModeCurriculum, DefaultBundle(domain.ModeCurriculum), "New Curriculum"},
		{"curriculum subject", domain.ModeCurriculum, &domain.Bundle{Curriculum: &domain.Curriculum{Subject: "Chemistry"}}, "Chemistry"},
		{"shop default", domain.ModeEcom, nil, "New TikTok Shop"},
		{"shop name", domain.ModeEcom, &domain.Bundle{TikTokShop: &domain.TikTokShop{BusinessName: "Cozy candles"}}, "Cozy candles"},
		{"general default", domain.ModeGeneral, DefaultBundle(domain.ModeGeneral), "General Chat"},
		{"general topic", domain.ModeGeneral, &domain.Bundle{GeneralChat: &domain.GeneralChat{Topic: "tide pools"}}, "tide pools"},
		{"unknown", domain.Mode("x"), nil, "New Conversation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.mode, tt.data))
		})
	}
}

func TestDefaultBundle_OnlyActiveRecord(t *testing.T) {
	b := DefaultBundle(domain.ModeEcom)
	assert.NotNil(t, b.TikTokShop)
	assert.Nil(t, b.Curriculum)
	assert.Nil(t, b.GeneralChat)
	assert.Equal(t, &domain.Bundle{}, DefaultBundle(domain.Mode("nope")))
}
