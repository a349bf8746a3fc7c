package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/data/users", func(ur chi.Router) {
		ur.Get("/", getUserByNameHandler(svc))
		ur.Get("/all", listUsersHandler(svc))
		ur.Post("/", createUserHandler(svc))
	})
}

type createUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    User   `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// getUserByNameHandler busca por la clave natural (name exacto, sin trim).
// @Summary Buscar usuario por nombre
// @Param name query string true "nombre exacto del usuario"
// @Success 200 {object} User
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /data/users [get]
func getUserByNameHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			writeError(w, http.StatusBadRequest, "Missing 'name' query parameter")
			return
		}

		u, err := svc.GetByName(r.Context(), name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to read user data")
			return
		}

		writeJSON(w, http.StatusOK, u)
	}
}

// @Summary Listar todos los usuarios
// @Success 200 {array} User
// @Router /data/users/all [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to read user data")
			return
		}
		if items == nil {
			items = []User{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// createUserHandler da de alta un usuario. La unicidad por name se
// exige acá (capa handler), no en la entidad: ver nota en model.go.
// @Summary Crear usuario
// @Accept json
// @Success 201 {object} createUserResponse
// @Failure 400 {object} errorResponse
// @Router /data/users [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := DecodeCreateRequest(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		// chequeo de duplicado antes del alta; sin transacción, igual
		// que el original (el repo jsonfile serializa por colección).
		if _, err := svc.GetByName(r.Context(), in.Name); err == nil {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		} else if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrInvalidInput) {
			writeError(w, http.StatusInternalServerError, "Failed to read user data")
			return
		}

		u, err := svc.Create(r.Context(), in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to write user data")
			return
		}

		writeJSON(w, http.StatusCreated, createUserResponse{
			Success: true,
			Message: "User created successfully",
			User:    u,
		})
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (users/medications) para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
