package handle

import (
	"encoding/json"
	"net/http"

	"fleetops/internal/auth-service/core/domain/dto"
	"fleetops/internal/auth-service/core/ports"
	"fleetops/internal/mylogger"
)

type UsersHandler struct {
	usersService ports.IUsersService
	mylog        mylogger.Logger
}

func NewUsersHandler(usersService ports.IUsersService, mylog mylogger.Logger) *UsersHandler {
	return &UsersHandler{
		usersService: usersService,
		mylog:        mylog,
	}
}

func (uh *UsersHandler) GetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userId := r.PathValue("user_id")

		user, err := uh.usersService.GetUser(r.Context(), userId)
		if err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.UserResponseDto{Success: true, Data: user})
	}
}

func (uh *UsersHandler) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := uh.usersService.ListUsers(r.Context())
		if err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.UserListResponseDto{Data: users})
	}
}

func (uh *UsersHandler) UpdateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userId := r.PathValue("user_id")

		req := dto.UserUpdateRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		user, err := uh.usersService.UpdateUser(r.Context(), userId, req)
		if err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.UserResponseDto{Success: true, Data: user})
	}
}

func (uh *UsersHandler) DeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userId := r.PathValue("user_id")

		if err := uh.usersService.DeleteUser(r.Context(), userId); err != nil {
			JsonError(w, statusFor(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.MessageResponseDto{Success: true, Message: "user deleted"})
	}
}
