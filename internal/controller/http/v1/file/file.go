package file

import (
	"net/http"
	"path/filepath"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type Controller struct {
	mediaBasePath string
}

func NewController(mediaBasePath string) *Controller {
	return &Controller{mediaBasePath}
}

// File serves a stored media file. Directory listings are never exposed.
func (cf Controller) File(c *gin.Context) {
	fs := gin.Dir(cf.mediaBasePath, false)

	file := c.Param("filepath")

	f, err := fs.Open(file)
	if err != nil {
		c.JSON(http.StatusNotFound, map[string]any{
			"error":  "file not found",
			"status": false,
		})
		return
	}
	f.Close()

	http.ServeFile(c.Writer, c.Request, filepath.Join(cf.mediaBasePath, file))
}

// Upload stores a multipart file under the media root and returns its path,
// which is then reachable through the /media route.
func (cf Controller) Upload(c *web.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "reading form file"), http.StatusBadRequest))
	}

	folder := c.Query("folder")
	if folder == "" {
		folder = "uploads"
	}

	path, err := service.Upload(fileHeader, cf.mediaBasePath, folder)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]string{
			"path": path,
		},
		"status": true,
	}, http.StatusCreated)
}
