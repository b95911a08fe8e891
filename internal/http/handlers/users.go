package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"holidays/internal/domain/models"
	"holidays/internal/repositories"
)

type userRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

func GetUsers(c *gin.Context) {
	list, err := repositories.UserRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetUserByID(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		return
	}
	u, err := repositories.UserRepository{}.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func CreateUser(c *gin.Context) {
	var req userRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	u := models.User{
		Username:    req.Username,
		Email:       req.Email,
		IsStaff:     req.IsStaff,
		IsSuperuser: req.IsSuperuser,
	}
	id, err := repositories.UserRepository{}.Create(u, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	u.ID = id
	c.JSON(http.StatusCreated, u)
}

func UpdateUser(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		return
	}
	var req userRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	u := models.User{
		ID:          id,
		Username:    req.Username,
		Email:       req.Email,
		IsStaff:     req.IsStaff,
		IsSuperuser: req.IsSuperuser,
	}
	if err := (repositories.UserRepository{}).Update(u, req.Password); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func DeleteUser(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		return
	}
	if err := (repositories.UserRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
