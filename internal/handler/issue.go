package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Vedlovable/Samadhaan-Setu/internal/filter"
	"github.com/Vedlovable/Samadhaan-Setu/internal/middleware"
	model "github.com/Vedlovable/Samadhaan-Setu/internal/models"
	"github.com/Vedlovable/Samadhaan-Setu/internal/repository"
	"github.com/Vedlovable/Samadhaan-Setu/internal/utils"
	"github.com/Vedlovable/Samadhaan-Setu/internal/validate"
	"github.com/gorilla/mux"
)

const maxUploadSize = 32 << 20 // 32 Mo par soumission multipart

// SubmitIssue reçoit une soumission citoyenne (JSON ou multipart avec photos
// et note vocale). Le chemin distant est tenté d'abord ; tout échec bascule
// silencieusement sur le store local.
func SubmitIssue(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentification requise")
		return
	}

	var req model.CreateIssueRequest
	var images []repository.UploadFile
	var audio *repository.UploadFile

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		req, images, audio, err = parseMultipartSubmission(r)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "formulaire invalide", err)
			return
		}
	} else {
		if err := utils.DecodeJSON(r, &req); err != nil {
			utils.Error(w, http.StatusBadRequest, "JSON invalide", err)
			return
		}
	}

	// Validation avant toute persistance
	if err := validate.Submission(req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := controller.SubmitReport(r.Context(), user, req, images, audio)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible d'enregistrer le signalement", err)
		return
	}

	utils.Success(w, res)
}

func parseMultipartSubmission(r *http.Request) (model.CreateIssueRequest, []repository.UploadFile, *repository.UploadFile, error) {
	var req model.CreateIssueRequest

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return req, nil, nil, err
	}

	req.Title = r.FormValue("title")
	req.Description = r.FormValue("description")
	req.Category = r.FormValue("category")
	req.Priority = r.FormValue("priority")
	req.Location = r.FormValue("location")
	req.Address = r.FormValue("address")

	if v := r.FormValue("lat"); v != "" {
		if lat, err := strconv.ParseFloat(v, 64); err == nil {
			req.Lat = &lat
		}
	}
	if v := r.FormValue("lng"); v != "" {
		if lng, err := strconv.ParseFloat(v, 64); err == nil {
			req.Lng = &lng
		}
	}

	var images []repository.UploadFile
	for _, fh := range r.MultipartForm.File["images"] {
		f, err := fh.Open()
		if err != nil {
			return req, nil, nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return req, nil, nil, err
		}
		images = append(images, repository.UploadFile{Filename: fh.Filename, Data: data})
	}

	var audio *repository.UploadFile
	if fhs := r.MultipartForm.File["audio"]; len(fhs) > 0 {
		f, err := fhs[0].Open()
		if err != nil {
			return req, nil, nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return req, nil, nil, err
		}
		audio = &repository.UploadFile{Filename: fhs[0].Filename, Data: data}
	}

	return req, images, audio, nil
}

// ListIssues retourne la projection fusionnée des deux backends, filtrée par
// les query params status, category et q.
func ListIssues(w http.ResponseWriter, r *http.Request) {
	records, err := controller.Records(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de récupérer les signalements", err)
		return
	}

	query := r.URL.Query()
	filtered := filter.Apply(records, filter.Criteria{
		Status:   query.Get("status"),
		Category: query.Get("category"),
		Query:    query.Get("q"),
	})

	utils.Success(w, filtered)
}

// GetMarkers retourne les points géolocalisés pour la carte
func GetMarkers(w http.ResponseWriter, r *http.Request) {
	records, err := controller.Records(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de récupérer les signalements", err)
		return
	}

	utils.Success(w, filter.Markers(records))
}

// GetStats retourne les compteurs des cartes du tableau de bord
func GetStats(w http.ResponseWriter, r *http.Request) {
	records, err := controller.Records(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de récupérer les signalements", err)
		return
	}

	utils.Success(w, filter.ComputeStats(records))
}

type saveUpdateRequest struct {
	Message string `json:"message"`
}

// UpdateStatus avance le statut d'un cran dans le cycle du backend
// propriétaire et enregistre la note de suivi (admin seulement)
func UpdateStatus(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := entityFromPath(w, r)
	if !ok {
		return
	}

	var req saveUpdateRequest
	// Corps optionnel : un message vide reçoit le texte par défaut
	_ = utils.DecodeJSON(r, &req)

	newStatus, err := controller.SaveUpdate(r.Context(), kind, id, req.Message)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de mettre à jour le statut", err)
		return
	}

	utils.Success(w, map[string]string{"status": newStatus})
}

// Assign affecte le signalement à l'admin courant (idempotent)
func Assign(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := entityFromPath(w, r)
	if !ok {
		return
	}

	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentification requise")
		return
	}

	assignee := controller.Assign(kind, id, user.Name)
	utils.Success(w, map[string]string{"assignee": assignee})
}

// GetUpdates retourne le journal de suivi, du plus récent au plus ancien
func GetUpdates(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := entityFromPath(w, r)
	if !ok {
		return
	}

	utils.Success(w, controller.Updates(kind, id))
}

// entityFromPath extrait le couple (kind, id) des variables de route.
func entityFromPath(w http.ResponseWriter, r *http.Request) (model.EntityKind, int64, bool) {
	vars := mux.Vars(r)

	var kind model.EntityKind
	switch vars["kind"] {
	case string(model.KindIssue):
		kind = model.KindIssue
	case string(model.KindReport):
		kind = model.KindReport
	default:
		utils.ErrorSimple(w, http.StatusBadRequest, "kind must be issue or report")
		return "", 0, false
	}

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid id")
		return "", 0, false
	}

	return kind, id, true
}
