package handlers

import (
	"errors"
	"net/http"

	"gobridgeflow/session"
	"gobridgeflow/types"

	log "github.com/sirupsen/logrus"
)

func SignIn(w http.ResponseWriter, r *http.Request) {
	credentialsHandler(w, r, deps.Auth.SignIn)
}

func SignUp(w http.ResponseWriter, r *http.Request) {
	credentialsHandler(w, r, deps.Auth.SignUp)
}

func SignInGitHub(w http.ResponseWriter, r *http.Request) {
	user := deps.Auth.SignInGitHub()
	log.WithField("user", user.ID).Info("GitHub user signed in")
	responseJSON(w, &APIUserResponse{Status: "ok", User: user}, http.StatusOK)
}

func credentialsHandler(w http.ResponseWriter, r *http.Request, authenticate func(session.Credentials) (*types.UserProfile, error)) {
	var req session.Credentials
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := authenticate(req)
	if err != nil {
		var formErrs session.FormErrors
		if errors.As(err, &formErrs) {
			responseJSON(w, &APIResponse{
				Status:  "error",
				Message: "Invalid form",
				Fields:  formErrs,
			}, http.StatusBadRequest)
			return
		}
		log.Errorf("Error authenticating: %s", err)
		responseError(w, "", "Cannot authenticate", http.StatusInternalServerError)
		return
	}

	log.WithField("user", user.ID).Info("User signed in")
	responseJSON(w, &APIUserResponse{Status: "ok", User: user}, http.StatusOK)
}
