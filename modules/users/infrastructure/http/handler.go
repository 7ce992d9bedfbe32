// Package http provides HTTP handlers for the users module.
// Handlers translate HTTP requests into commands/queries and map
// outcomes to status codes; they carry no business rules themselves.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mzukov/web-api/modules/shared/pagination"
	"github.com/mzukov/web-api/modules/shared/types"
	"github.com/mzukov/web-api/modules/users/application/commands"
	"github.com/mzukov/web-api/modules/users/application/patch"
	"github.com/mzukov/web-api/modules/users/application/queries"
	"github.com/mzukov/web-api/modules/users/domain"
)

// collectionAllow is the advertised verb allow-list for /users.
const collectionAllow = "GET,POST,OPTIONS"

// Handler handles HTTP requests for the users module.
type Handler struct {
	createUser  *commands.CreateUserHandler
	replaceUser *commands.ReplaceUserHandler
	patchUser   *commands.PatchUserHandler
	deleteUser  *commands.DeleteUserHandler
	getUser     *queries.GetUserHandler
	userExists  *queries.UserExistsHandler
	listUsers   *queries.ListUsersHandler
}

// RegisterRoutes registers the users module routes to the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	createUser *commands.CreateUserHandler,
	replaceUser *commands.ReplaceUserHandler,
	patchUser *commands.PatchUserHandler,
	deleteUser *commands.DeleteUserHandler,
	getUser *queries.GetUserHandler,
	userExists *queries.UserExistsHandler,
	listUsers *queries.ListUsersHandler,
) {
	h := &Handler{
		createUser:  createUser,
		replaceUser: replaceUser,
		patchUser:   patchUser,
		deleteUser:  deleteUser,
		getUser:     getUser,
		userExists:  userExists,
		listUsers:   listUsers,
	}

	mux.HandleFunc("GET /users", h.handleListUsers)
	mux.HandleFunc("POST /users", h.handleCreateUser)
	mux.HandleFunc("OPTIONS /users", h.handleCollectionOptions)
	// The GET pattern also serves HEAD existence probes.
	mux.HandleFunc("GET /users/{id}", h.handleGetUser)
	mux.HandleFunc("PUT /users/{id}", h.handleReplaceUser)
	mux.HandleFunc("PATCH /users/{id}", h.handlePatchUser)
	mux.HandleFunc("DELETE /users/{id}", h.handleDeleteUser)
}

// Request/Response DTOs

type createUserRequest struct {
	Login string `json:"login"`
}

type createUserResponse struct {
	ID string `json:"id"`
}

type replaceUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handlers

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.createUser.Handle(r.Context(), commands.CreateUserCommand{Login: req.Login})
	if err != nil {
		handleError(w, err)
		return
	}

	w.Header().Set("Location", "/users/"+id)
	writeJSON(w, http.StatusCreated, createUserResponse{ID: id})
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if r.Method == http.MethodHead {
		if err := h.userExists.Handle(r.Context(), queries.UserExistsQuery{UserID: id}); err != nil {
			handleError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		return
	}

	user, err := h.getUser.Handle(r.Context(), queries.GetUserQuery{UserID: id})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) handleReplaceUser(w http.ResponseWriter, r *http.Request) {
	var req replaceUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.ReplaceUserCommand{
		UserID:    r.PathValue("id"),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	result, err := h.replaceUser.Handle(r.Context(), cmd)
	if err != nil {
		handleError(w, err)
		return
	}

	if result.Inserted {
		w.Header().Set("Location", "/users/"+result.UserID)
		writeJSON(w, http.StatusCreated, createUserResponse{ID: result.UserID})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handlePatchUser(w http.ResponseWriter, r *http.Request) {
	var ops []patch.Operation
	if err := json.NewDecoder(r.Body).Decode(&ops); err != nil {
		writeError(w, http.StatusBadRequest, "invalid patch document")
		return
	}

	cmd := commands.PatchUserCommand{
		UserID: r.PathValue("id"),
		Ops:    ops,
	}

	if err := h.patchUser.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	cmd := commands.DeleteUserCommand{UserID: r.PathValue("id")}
	if err := h.deleteUser.Handle(r.Context(), cmd); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	pageNumber, _ := strconv.Atoi(r.URL.Query().Get("pageNumber"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))

	result, err := h.listUsers.Handle(r.Context(), queries.ListUsersQuery{
		PageNumber: pageNumber,
		PageSize:   pageSize,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	links := pagination.BuildLinks(r.URL.Path, result.Page, result.TotalCount)
	header, err := links.Header()
	if err != nil {
		handleError(w, err)
		return
	}

	w.Header().Set("X-Pagination", header)
	writeJSON(w, http.StatusOK, result.Users)
}

func (h *Handler) handleCollectionOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", collectionAllow)
	w.WriteHeader(http.StatusOK)
}

// Helper functions

func handleError(w http.ResponseWriter, err error) {
	var validationErr *types.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusUnprocessableEntity, validationErr.Fields)
	case errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, domain.ErrUserNotFound.Error())
	case errors.Is(err, domain.ErrNilUserID), errors.Is(err, domain.ErrInvalidUserID):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
