package getSearch

import (
	"errors"
	"net/http"

	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"
	"hotelBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
)

type SearchResponse struct {
	response.Response
	Criteria *models.SearchCriteria `json:"criteria"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CriteriaGetter
type CriteriaGetter interface {
	GetSearchCriteria(key string) (*models.SearchCriteria, error)
}

func New(log *slog.Logger, criteria CriteriaGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.search.getSearch.New"

		log = log.With(slog.String("op", op))

		key := chi.URLParam(r, "key")
		if key == "" {
			log.Error("search key is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("search key is required"))
			return
		}

		log = log.With(slog.String("key", key))

		c, err := criteria.GetSearchCriteria(key)
		if err != nil {
			log.Error("failed to get search criteria", sl.Err(err))

			if errors.Is(err, storage.ErrSearchNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("search criteria not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get search criteria"))
			return
		}

		log.Info("search criteria retrieved")

		render.JSON(w, r, SearchResponse{
			Response: response.OK(),
			Criteria: c,
		})
	}
}
