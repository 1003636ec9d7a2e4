package app

import (
	"log/slog"
	"net/http"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/api"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/jsonutil"
	appmiddleware "github.com/gnaneshwar04/Movie-Ticket-Booking/internal/middleware"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	return jsonutil.WriteJSON(w, status, data, headers)
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return jsonutil.ReadJSON(w, r, dst)
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	return appmiddleware.Logger(r, app.logger)
}

func toPagination(params api.ListParams) domain.Pagination {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	return pagination
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	if metadata == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
