package controllers

import (
	"log"
	"net/http"
	"os"

	"github.com/ghodss/yaml"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"wanderly/pkg/utils"
)

const SwaggerSpecRoute = "/docs/swagger.json"

// RegisterSwagger serves the hand-maintained YAML document as JSON and the UI
// under /swagger.
func RegisterSwagger(r *gin.Engine, specPath string) {
	r.GET(SwaggerSpecRoute, func(c *gin.Context) {
		data, err := os.ReadFile(specPath)
		if err != nil {
			log.Printf("load swagger document: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, "unable to load swagger document")
			return
		}
		jsonSpec, err := yaml.YAMLToJSON(data)
		if err != nil {
			log.Printf("convert swagger document: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, "unable to parse swagger document")
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", jsonSpec)
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(SwaggerSpecRoute)))
}
