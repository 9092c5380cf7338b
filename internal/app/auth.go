package app

import (
	"errors"
	"fmt"
	"net/http"

	"movie-booking/api"
	"movie-booking/internal/auth"
	"movie-booking/internal/domain"
)

func (app *application) RegisterUser(w http.ResponseWriter, r *http.Request) {
	app.register(w, r, app.userRepo, domain.RoleUser)
}

func (app *application) LoginUser(w http.ResponseWriter, r *http.Request) {
	app.login(w, r, app.userRepo, domain.RoleUser)
}

func (app *application) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	app.register(w, r, app.adminRepo, domain.RoleAdmin)
}

func (app *application) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	app.login(w, r, app.adminRepo, domain.RoleAdmin)
}

func (app *application) RegisterOwner(w http.ResponseWriter, r *http.Request) {
	app.register(w, r, app.ownerRepo, domain.RoleOwner)
}

func (app *application) LoginOwner(w http.ResponseWriter, r *http.Request) {
	app.login(w, r, app.ownerRepo, domain.RoleOwner)
}

// register creates a new account in the namespace backed by repo. The three
// namespaces share this flow and differ only in the table the repository
// writes to and the role baked into the issued token.
func (app *application) register(w http.ResponseWriter, r *http.Request, repo domain.IdentityRepository, role domain.Role) {
	var req api.RegisterRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	identity := &domain.Identity{
		Role:    role,
		Name:    req.Name,
		Email:   req.Email,
		Contact: req.Contact,
	}

	err = identity.Password.Set(req.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = repo.Create(r.Context(), identity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			app.duplicateEmailResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	token, err := auth.IssueToken([]byte(app.config.jwt.secret), identity.ID, role, app.config.jwt.ttl)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if role == domain.RoleUser {
		app.background(func() {
			data := map[string]any{
				"name": identity.Name,
			}

			err := app.mailer.Send(identity.Email, "user_welcome.tmpl", data)
			if err != nil {
				app.logger.Error("failed to send welcome email", "recipient", identity.Email, "error", err)
			}
		})
	}

	resp := api.AuthResponse{
		Token: token,
		User:  toIdentityResponse(identity),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// login authenticates against a single namespace. A valid user password
// presented at the admin login endpoint fails, because the lookup never
// leaves the admins table.
func (app *application) login(w http.ResponseWriter, r *http.Request, repo domain.IdentityRepository, role domain.Role) {
	var req api.LoginRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	identity, err := repo.GetByEmail(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	match, err := identity.Password.Matches(req.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !match {
		app.invalidCredentialsResponse(w, r)
		return
	}

	token, err := auth.IssueToken([]byte(app.config.jwt.secret), identity.ID, role, app.config.jwt.ttl)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.AuthResponse{
		Token: token,
		User:  toIdentityResponse(identity),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// background runs fn in a goroutine, recovering any panic so a failure in a
// side effect like email delivery can't take the server down.
func (app *application) background(fn func()) {
	go func() {
		defer func() {
			if err := recover(); err != nil {
				app.logger.Error(fmt.Sprintf("%v", err))
			}
		}()

		fn()
	}()
}

func toIdentityResponse(identity *domain.Identity) api.IdentityResponse {
	return api.IdentityResponse{
		Id:        identity.ID,
		Name:      identity.Name,
		Email:     identity.Email,
		Contact:   identity.Contact,
		Role:      string(identity.Role),
		CreatedAt: identity.CreatedAt,
	}
}
