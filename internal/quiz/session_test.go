package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_WalksToResult(t *testing.T) {
	s, err := NewSession("q1", VariantShort)
	require.NoError(t, err)

	require.Equal(t, "body", s.Current().ID)
	require.NoError(t, s.Answer(Vata))
	require.Equal(t, 1, s.Step)
	require.Equal(t, "skin", s.Current().ID)
	require.NoError(t, s.Answer(Vata))
	require.False(t, s.Done())
	require.NoError(t, s.Answer(Pitta))

	require.True(t, s.Done())
	assert.Equal(t, Vata, *s.Result)
	assert.Nil(t, s.Current())
	assert.Equal(t, Answers{"body": Vata, "skin": Vata, "appetite": Pitta}, s.Answers)

	assert.ErrorIs(t, s.Answer(Kapha), ErrQuizComplete)
}

func TestSession_InvalidAnswerKeepsState(t *testing.T) {
	s, err := NewSession("q1", VariantFull)
	require.NoError(t, err)

	require.NoError(t, s.Answer(Kapha))
	assert.ErrorIs(t, s.Answer("fire"), ErrInvalidDosha)
	assert.Equal(t, 1, s.Step)
	assert.Len(t, s.Answers, 1)
}

func TestSession_Reset(t *testing.T) {
	s, err := NewSession("q1", VariantShort)
	require.NoError(t, err)

	// partial
	require.NoError(t, s.Answer(Kapha))
	s.Reset()
	assert.Equal(t, 0, s.Step)
	assert.Empty(t, s.Answers)
	assert.Nil(t, s.Result)

	// completed
	for i := 0; i < s.Total(); i++ {
		require.NoError(t, s.Answer(Pitta))
	}
	require.True(t, s.Done())
	s.Reset()
	assert.Equal(t, 0, s.Step)
	assert.Empty(t, s.Answers)
	assert.False(t, s.Done())
	assert.Equal(t, "body", s.Current().ID)
}

func TestSessionStore_PrunesIdle(t *testing.T) {
	store := NewSessionStore(time.Minute)

	old, _ := NewSession("old", VariantFull)
	old.UpdatedAt = time.Now().Add(-time.Hour)
	store.Create(old)

	fresh, _ := NewSession("fresh", VariantFull)
	store.Create(fresh)

	assert.Equal(t, 1, store.Len())
	_, err := store.Get("old")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_SnapshotIsCopy(t *testing.T) {
	store := NewSessionStore(0)
	s, _ := NewSession("q1", VariantFull)
	store.Create(s)

	snap, err := store.Update("q1", func(s *Session) error { return s.Answer(Vata) })
	require.NoError(t, err)

	snap.Answers["skin"] = Kapha

	again, err := store.Get("q1")
	require.NoError(t, err)
	assert.Len(t, again.Answers, 1)
}
