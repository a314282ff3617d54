package handlers

import (
	"errors"
	"io"
	"net/http"

	"bannerpost/internal/banner"
	"bannerpost/internal/upload"
)

const (
	msgNoFile        = "No file uploaded."
	msgBadFormat     = "Unsupported file format."
	msgInternalError = "An internal error occurred."
)

const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Banner Post</title>
</head>
<body>
  <h1>Banner Post</h1>
  <p>Upload one image. It will be rendered in four banner sizes and published.</p>
  <form action="/upload" method="post" enctype="multipart/form-data">
    <input type="file" name="image" accept="image/jpeg,image/png,image/gif">
    <button type="submit">Upload</button>
  </form>
</body>
</html>
`

const successHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Banner Post</title>
</head>
<body>
  <h1>Upload received</h1>
  <p>Your image was processed and the banner set is being published.</p>
  <p><a href="/">Upload another</a></p>
</body>
</html>
`

// Index serves the single-file upload form.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	a.html(w, http.StatusOK, indexHTML)
}

// Upload runs the whole pipeline for one request: validate the attached
// file, render the four banner variants, hand them to the publisher.
// Validation and render failures abort with a client-visible status;
// publish failures are absorbed by the publisher and only logged, so a
// request that survives rendering always ends in the fixed success page.
func (a *App) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.Config.MaxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		header = nil
	} else {
		defer file.Close()
	}

	if err := upload.Check(header); err != nil {
		if errors.Is(err, upload.ErrMissingFile) {
			a.text(w, http.StatusBadRequest, msgNoFile)
			return
		}
		a.text(w, http.StatusBadRequest, msgBadFormat)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to read uploaded file")
		a.text(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	images, err := banner.Render(data, a.Sizes)
	if err != nil {
		a.Logger.Error().Err(err).
			Str("content_type", header.Header.Get("Content-Type")).
			Int("bytes", len(data)).
			Msg("banner render failed")
		a.text(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	report := a.Publisher.Publish(r.Context(), images)
	a.Logger.Info().
		Int("variants", len(images)).
		Int("uploaded", report.Uploaded()).
		Bool("posted", report.Posted).
		Msg("upload pipeline finished")

	a.html(w, http.StatusOK, successHTML)
}
