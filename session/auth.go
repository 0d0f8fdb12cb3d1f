package session

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"gobridgeflow/types"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	RoleDeveloper = "developer"

	minPasswordLength = 6

	githubEmail  = "developer@github.com"
	githubName   = "GitHub Developer"
	githubAvatar = "https://github.com/github.png"
)

var emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)

// ProfileStore persists user profiles; implemented by the redis package
type ProfileStore interface {
	SaveUserProfile(p *types.UserProfile) error
}

// FormErrors maps a form field to what is wrong with it
type FormErrors map[string]string

func (e FormErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, field+": "+e[field])
	}
	return strings.Join(msgs, "; ")
}

type Credentials struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Name            string `json:"name"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Authenticator fabricates users. Nothing is checked against a user
// database; any well-formed form signs in.
type Authenticator struct {
	store ProfileStore
	wg    sync.WaitGroup
}

func NewAuthenticator(store ProfileStore) *Authenticator {
	return &Authenticator{store: store}
}

func validate(c Credentials, signup bool) error {
	errs := FormErrors{}

	if c.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(c.Email) {
		errs["email"] = "Email is invalid"
	}

	if c.Password == "" {
		errs["password"] = "Password is required"
	} else if len(c.Password) < minPasswordLength {
		errs["password"] = "Password must be at least 6 characters"
	}

	if signup {
		if c.Name == "" {
			errs["name"] = "Name is required"
		}
		if c.Password != c.ConfirmPassword {
			errs["confirmPassword"] = "Passwords do not match"
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (a *Authenticator) SignIn(c Credentials) (*types.UserProfile, error) {
	return a.emailUser(c, false)
}

func (a *Authenticator) SignUp(c Credentials) (*types.UserProfile, error) {
	return a.emailUser(c, true)
}

func (a *Authenticator) emailUser(c Credentials, signup bool) (*types.UserProfile, error) {
	if err := validate(c, signup); err != nil {
		return nil, err
	}

	name := c.Name
	if name == "" {
		name = strings.SplitN(c.Email, "@", 2)[0]
	}

	user := &types.UserProfile{
		ID:        uuid.New().String(),
		Email:     c.Email,
		Name:      name,
		Role:      RoleDeveloper,
		TsCreated: time.Now().Unix(),
	}
	a.remember(user)
	return user, nil
}

// SignInGitHub pretends an OAuth round trip succeeded
func (a *Authenticator) SignInGitHub() *types.UserProfile {
	user := &types.UserProfile{
		ID:        "github-user-" + uuid.New().String(),
		Email:     githubEmail,
		Name:      githubName,
		Role:      RoleDeveloper,
		Avatar:    githubAvatar,
		TsCreated: time.Now().Unix(),
	}
	a.remember(user)
	return user
}

// remember writes the profile in the background; failures are only logged
func (a *Authenticator) remember(user *types.UserProfile) {
	if a.store == nil {
		return
	}

	profile := *user
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.store.SaveUserProfile(&profile); err != nil {
			log.WithField("user", profile.ID).Warnf("User profile not stored, it will not persist: %s", err)
			return
		}
		log.WithField("user", profile.ID).Debug("Stored user profile")
	}()
}

// Close waits for pending profile writes
func (a *Authenticator) Close() {
	a.wg.Wait()
}
