package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"gobridgeflow/config"
	"gobridgeflow/flow"
	"gobridgeflow/idgen"
	"gobridgeflow/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeStore struct {
	mu       sync.Mutex
	err      error
	profiles map[string]types.UserProfile
}

func (s *fakeStore) SaveUserProfile(p *types.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if s.profiles == nil {
		s.profiles = make(map[string]types.UserProfile)
	}
	s.profiles[p.ID] = *p
	return nil
}

func newTestRegistry() *Registry {
	var cfg config.Configuration
	return NewRegistry(cfg.Catalog(), idgen.NewRandom(1))
}

func TestRegistryLifecycle(t *testing.T) {
	r := newTestRegistry()
	id, snap := r.Open("alice")
	require.NotEmpty(t, id)
	assert.Equal(t, types.StageDeposit, snap.Stage)
	assert.Equal(t, 1, r.Len())

	err := r.Do(id, "alice", func(f *flow.Flow) error {
		if err := f.ConfigureDeposit("sui", "ethereum", "sui", "10", "0xabc"); err != nil {
			return err
		}
		return f.Advance()
	})
	require.NoError(t, err)

	var stage types.Stage
	require.NoError(t, r.Do(id, "alice", func(f *flow.Flow) error {
		stage = f.Stage()
		return nil
	}))
	assert.Equal(t, types.StageBridge, stage)

	require.NoError(t, r.Close(id, "alice"))
	assert.Equal(t, 0, r.Len())
	assert.ErrorIs(t, r.Do(id, "alice", func(*flow.Flow) error { return nil }), ErrFlowNotFound)
	assert.ErrorIs(t, r.Close(id, "alice"), ErrFlowNotFound)
}

func TestRegistryOwnership(t *testing.T) {
	r := newTestRegistry()
	id, _ := r.Open("alice")

	called := false
	err := r.Do(id, "mallory", func(*flow.Flow) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.False(t, called)
	assert.ErrorIs(t, r.Close(id, "mallory"), ErrNotOwner)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryPassesFlowErrors(t *testing.T) {
	r := newTestRegistry()
	id, _ := r.Open("alice")
	err := r.Do(id, "alice", func(f *flow.Flow) error { return f.Advance() })
	assert.ErrorIs(t, err, flow.ErrIncompleteConfiguration)
}

func TestRegistryFlowsAreIndependent(t *testing.T) {
	r := newTestRegistry()
	a, _ := r.Open("alice")
	b, _ := r.Open("alice")
	require.NotEqual(t, a, b)

	require.NoError(t, r.Do(a, "alice", func(f *flow.Flow) error {
		return f.ConfigureDeposit("sui", "polygon", "usdc", "5", "0x1")
	}))
	require.NoError(t, r.Do(b, "alice", func(f *flow.Flow) error {
		assert.False(t, f.Configured())
		return nil
	}))
}

func TestRegistryConcurrentAdvance(t *testing.T) {
	r := newTestRegistry()
	id, _ := r.Open("alice")
	require.NoError(t, r.Do(id, "alice", func(f *flow.Flow) error {
		return f.ConfigureDeposit("sui", "ethereum", "eth", "1", "0x1")
	}))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, r.Do(id, "alice", func(f *flow.Flow) error { return f.Advance() }))
		}()
	}
	wg.Wait()

	require.NoError(t, r.Do(id, "alice", func(f *flow.Flow) error {
		assert.Equal(t, types.StageWithdraw, f.Stage())
		assert.True(t, f.Completed())
		return nil
	}))
}

func TestSignInBuildsProfile(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := &fakeStore{}
	a := NewAuthenticator(store)
	user, err := a.SignIn(Credentials{Email: "dev@example.com", Password: "secret1"})
	require.NoError(t, err)
	a.Close()

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "dev", user.Name)
	assert.Equal(t, RoleDeveloper, user.Role)
	assert.Contains(t, store.profiles, user.ID)
}

func TestSignUpValidation(t *testing.T) {
	a := NewAuthenticator(nil)

	_, err := a.SignUp(Credentials{Email: "nope", Password: "123", ConfirmPassword: "1234"})
	var formErrs FormErrors
	require.True(t, errors.As(err, &formErrs))
	assert.Equal(t, "Email is invalid", formErrs["email"])
	assert.Equal(t, "Password must be at least 6 characters", formErrs["password"])
	assert.Equal(t, "Name is required", formErrs["name"])
	assert.Equal(t, "Passwords do not match", formErrs["confirmPassword"])

	_, err = a.SignIn(Credentials{})
	require.True(t, errors.As(err, &formErrs))
	assert.Equal(t, FormErrors{"email": "Email is required", "password": "Password is required"}, formErrs)
	assert.Equal(t, "email: Email is required; password: Password is required", err.Error())

	user, err := a.SignUp(Credentials{Name: "Ada", Email: "ada@example.com", Password: "secret1", ConfirmPassword: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
}

func TestStoreFailureDoesNotFailSignIn(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := NewAuthenticator(&fakeStore{err: errors.New("storage unavailable")})
	user, err := a.SignIn(Credentials{Email: "dev@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotNil(t, user)

	gh := a.SignInGitHub()
	assert.Equal(t, "GitHub Developer", gh.Name)
	assert.Equal(t, "developer@github.com", gh.Email)
	assert.Contains(t, gh.ID, "github-user-")
	a.Close()
}

func TestRegistryPrune(t *testing.T) {
	r := newTestRegistry()
	id, _ := r.Open("alice")

	assert.Equal(t, 0, r.Prune(time.Hour, time.Now()))
	assert.Equal(t, 1, r.Len())

	assert.Equal(t, 1, r.Prune(time.Hour, time.Now().Add(2*time.Hour)))
	assert.Equal(t, 0, r.Len())
	assert.ErrorIs(t, r.Do(id, "alice", func(*flow.Flow) error { return nil }), ErrFlowNotFound)
}
