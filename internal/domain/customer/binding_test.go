package customer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/core/apperror"
)

type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) FindByIdentification(ctx context.Context, identification string) (*Client, error) {
	args := m.Called(ctx, identification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Client), args.Error(1)
}

func TestNewDraft_NormalizesBlankOptionals(t *testing.T) {
	d, err := NewDraft(Fields{
		Identification: " 0102030405 ",
		Name:           " Ana Pérez ",
		Phone:          "   ",
		Email:          "ana@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "0102030405", d.Identification)
	assert.Equal(t, "Ana Pérez", d.Name)
	assert.Nil(t, d.Phone)
	assert.Nil(t, d.Address)
	require.NotNil(t, d.Email)
	assert.Equal(t, "ana@example.com", *d.Email)
}

func TestNewDraft_RequiresNameAndIdentification(t *testing.T) {
	_, err := NewDraft(Fields{Identification: "0102030405"})
	assert.True(t, apperror.IsValidation(err))

	_, err = NewDraft(Fields{Name: "Ana"})
	assert.True(t, apperror.IsValidation(err))
}

func TestBinding_Modes(t *testing.T) {
	b := NewBinding()
	assert.Equal(t, ModeUnset, b.Mode())
	assert.Error(t, b.Validate())

	require.NoError(t, b.Resolve(Client{ID: 3, Identification: "0102030405", Name: "Ana"}))
	assert.Equal(t, ModeResolved, b.Mode())
	assert.NoError(t, b.Validate())

	require.NoError(t, b.Capture(Fields{Name: "Ana Nueva"}))
	assert.Equal(t, ModeNew, b.Mode())
	assert.Nil(t, b.Client(), "capturing drops the resolved client")
	assert.Equal(t, "0102030405", b.Draft().Identification, "typed identification is reused")

	b.SetFinalConsumer(true)
	assert.Equal(t, ModeWalkIn, b.Mode())

	b.SetFinalConsumer(false)
	assert.Equal(t, ModeNew, b.Mode(), "clearing the flag restores the previous state")
}

func TestBinding_ResolveRequiresID(t *testing.T) {
	b := NewBinding()
	err := b.Resolve(Client{Identification: "0102030405"})
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, ModeUnset, b.Mode())
}

func TestBinding_TypingAnotherIdentificationUnbinds(t *testing.T) {
	b, err := ResolvedBinding(Client{ID: 3, Identification: "0102030405", Name: "Ana"})
	require.NoError(t, err)

	b.Typed("0102030405")
	assert.Equal(t, ModeResolved, b.Mode())

	b.Typed("1799999999001")
	assert.Equal(t, ModeUnset, b.Mode())
	assert.Equal(t, "1799999999001", b.Identification())
}

func TestBinding_ResolveDiscardsDraft(t *testing.T) {
	b := NewBinding()
	require.NoError(t, b.Capture(Fields{Identification: "0102030405", Name: "Ana"}))
	require.NoError(t, b.Resolve(Client{ID: 9, Identification: "0102030405", Name: "Ana"}))

	assert.Nil(t, b.Draft())
	assert.Equal(t, int64(9), b.Client().ID)
}

func TestService_Bind(t *testing.T) {
	ctx := context.Background()

	t.Run("hit resolves", func(t *testing.T) {
		dir := new(MockDirectory)
		dir.On("FindByIdentification", ctx, "0102030405").
			Return(&Client{ID: 3, Identification: "0102030405", Name: "Ana"}, nil)

		b := NewBinding()
		found, err := NewService(dir).Bind(ctx, b, "0102030405")

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, ModeResolved, b.Mode())
		dir.AssertExpectations(t)
	})

	t.Run("miss falls into capture", func(t *testing.T) {
		dir := new(MockDirectory)
		dir.On("FindByIdentification", ctx, "0999999999").
			Return(nil, apperror.NewNotFound("client", "0999999999"))

		b, err := ResolvedBinding(Client{ID: 3, Identification: "0102030405", Name: "Ana"})
		require.NoError(t, err)

		found, err := NewService(dir).Bind(ctx, b, "0999999999")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, ModeUnset, b.Mode())
		assert.Equal(t, "0999999999", b.Identification())

		require.NoError(t, b.Capture(Fields{Name: "Luis"}))
		assert.Equal(t, "0999999999", b.Draft().Identification)
	})

	t.Run("miss after capture drops the captured draft", func(t *testing.T) {
		dir := new(MockDirectory)
		dir.On("FindByIdentification", ctx, "1111111111").
			Return(nil, apperror.NewNotFound("client", "1111111111"))
		dir.On("FindByIdentification", ctx, "2222222222").
			Return(nil, apperror.NewNotFound("client", "2222222222"))
		svc := NewService(dir)

		b := NewBinding()
		_, err := svc.Bind(ctx, b, "1111111111")
		require.NoError(t, err)
		require.NoError(t, b.Capture(Fields{Name: "Ana"}))
		require.Equal(t, ModeNew, b.Mode())

		found, err := svc.Bind(ctx, b, "2222222222")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, ModeUnset, b.Mode())
		assert.Nil(t, b.Draft())
		assert.Equal(t, "2222222222", b.Identification())

		require.NoError(t, b.Capture(Fields{Name: "Ana"}))
		assert.Equal(t, "2222222222", b.Draft().Identification)
		dir.AssertExpectations(t)
	})

	t.Run("same identification keeps the captured draft", func(t *testing.T) {
		dir := new(MockDirectory)
		dir.On("FindByIdentification", ctx, "1111111111").
			Return(nil, apperror.NewNotFound("client", "1111111111"))

		b := NewBinding()
		_, err := NewService(dir).Bind(ctx, b, "1111111111")
		require.NoError(t, err)
		require.NoError(t, b.Capture(Fields{Name: "Ana"}))

		_, err = NewService(dir).Bind(ctx, b, " 1111111111 ")
		require.NoError(t, err)
		assert.Equal(t, ModeNew, b.Mode())
		assert.Equal(t, "Ana", b.Draft().Name)
	})

	t.Run("backend failure is surfaced", func(t *testing.T) {
		dir := new(MockDirectory)
		boom := errors.New("timeout")
		dir.On("FindByIdentification", ctx, "0102030405").Return(nil, boom)

		_, err := NewService(dir).Bind(ctx, NewBinding(), "0102030405")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("blank identification", func(t *testing.T) {
		_, err := NewService(new(MockDirectory)).Bind(ctx, NewBinding(), "  ")
		assert.True(t, apperror.IsValidation(err))
	})
}

func TestWalkIn(t *testing.T) {
	w := WalkIn()
	assert.Equal(t, "9999999999", w.Identification)
	assert.Equal(t, "CONSUMIDOR FINAL", w.Name)
	assert.Zero(t, w.ID)
}
