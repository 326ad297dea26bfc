package uploadFile

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/models"
	"net/http"

	"github.com/go-chi/render"
)

const (
	formField = "file"
	// room for the multipart boundaries and headers around the file itself
	formOverhead = 1 << 20
)

type FileResponse struct {
	response.Response
	File *models.File `json:"file"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FileSaver
type FileSaver interface {
	Save(ctx context.Context, name string, r io.Reader) (*models.File, error)
}

func New(log *slog.Logger, saver FileSaver, maxSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.file.uploadFile.New"

		log := log.With(slog.String("op", op))

		r.Body = http.MaxBytesReader(w, r.Body, maxSize+formOverhead)

		file, header, err := r.FormFile(formField)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				log.Info("upload too large", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("file is too large"))
				return
			}

			log.Error("failed to read multipart file", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("field file is a required field"))
			return
		}
		defer file.Close()

		log = log.With(slog.String("filename", header.Filename), slog.Int64("size", header.Size))

		saved, err := saver.Save(r.Context(), header.Filename, file)
		if err != nil {
			status, resp := response.FromError(err, "failed to upload file")
			if status == http.StatusInternalServerError {
				log.Error("failed to upload file", sl.Err(err))
			} else {
				log.Info("upload rejected", sl.Err(err))
			}
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("file uploaded", slog.Int64("id", saved.ID))

		render.JSON(w, r, FileResponse{
			Response: response.OK(),
			File:     saved,
		})
	}
}
