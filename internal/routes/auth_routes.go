package routes

import (
	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine, d Deps) {
	r.POST("/jwt", d.Auth.IssueToken)
}
