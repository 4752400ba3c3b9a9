package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/srgjo27/seatflow/internal/core/domain"
)

type eventSummaryDTO struct {
	ID              int64     `json:"id"`
	Titulo          string    `json:"titulo"`
	Resumen         *string   `json:"resumen"`
	Fecha           time.Time `json:"fecha"`
	Direccion       *string   `json:"direccion"`
	Precio          *float64  `json:"precio"`
	Cancelado       bool      `json:"cancelado"`
	TipoNombre      *string   `json:"tipoNombre"`
	TipoDescripcion *string   `json:"tipoDescripcion"`
}

type integranteDTO struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	ImagenURL   *string `json:"imagenUrl"`
}

type eventDetailDTO struct {
	eventSummaryDTO
	EventoIDCatedra *int64          `json:"eventoIdCatedra"`
	Descripcion     *string         `json:"descripcion"`
	ImagenURL       *string         `json:"imagenUrl"`
	FilaAsientos    *int            `json:"filaAsientos"`
	ColumnAsientos  *int            `json:"columnAsientos"`
	Integrantes     []integranteDTO `json:"integrantes"`
}

type seatDTO struct {
	Fila         string `json:"fila"`
	Numero       int    `json:"numero"`
	Estado       string `json:"estado"`
	Seleccionado bool   `json:"seleccionado"`
}

type seatMapDTO struct {
	EventoID int64     `json:"eventoId"`
	Asientos []seatDTO `json:"asientos"`
}

type selectedSeatDTO struct {
	Fila            string  `json:"fila"`
	Numero          *int    `json:"numero"`
	NombrePersona   *string `json:"nombrePersona"`
	ApellidoPersona *string `json:"apellidoPersona"`
}

type selectionDTO struct {
	EventoID   int64             `json:"eventoId"`
	Asientos   []selectedSeatDTO `json:"asientos"`
	Expiracion *time.Time        `json:"expiracion"`
}

type blockedSeatDTO struct {
	Fila   string `json:"fila"`
	Numero int    `json:"numero"`
}

type blockResponseDTO struct {
	Exitoso            *bool            `json:"exitoso"`
	Mensaje            *string          `json:"mensaje"`
	AsientosBloqueados []blockedSeatDTO `json:"asientosBloqueados"`
}

type saleSeatDTO struct {
	Fila            string `json:"fila"`
	Numero          int    `json:"numero"`
	NombrePersona   string `json:"nombrePersona"`
	ApellidoPersona string `json:"apellidoPersona"`
}

type saleRequestDTO struct {
	EventoID int64         `json:"eventoId"`
	Asientos []saleSeatDTO `json:"asientos"`
}

type saleResponseDTO struct {
	ID          *int64     `json:"id"`
	EventoID    int64      `json:"eventoId"`
	Resultado   bool       `json:"resultado"`
	Mensaje     *string    `json:"mensaje"`
	Descripcion *string    `json:"descripcion"`
	FechaVenta  *time.Time `json:"fechaVenta"`
	PrecioVenta *float64   `json:"precioVenta"`
}

// MobileAPI talks to the booking backend's mobile endpoints.
type MobileAPI struct {
	c *client
}

func NewMobileAPI(baseURL string, httpClient *http.Client, tokens TokenSource, logger *slog.Logger) *MobileAPI {
	return &MobileAPI{c: newClient(baseURL, httpClient, tokens, logger)}
}

func (a *MobileAPI) ListEvents(ctx context.Context) ([]domain.EventSummary, error) {
	var dtos []eventSummaryDTO
	if _, err := a.c.do(ctx, http.MethodGet, "/api/eventos", nil, &dtos); err != nil {
		return nil, err
	}

	events := make([]domain.EventSummary, 0, len(dtos))
	for _, d := range dtos {
		events = append(events, d.toDomain())
	}

	return events, nil
}

func (a *MobileAPI) GetEventDetail(ctx context.Context, eventID int64) (*domain.EventDetail, error) {
	var dto eventDetailDTO
	if _, err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/eventos/%d", eventID), nil, &dto); err != nil {
		return nil, err
	}

	return dto.toDomain(), nil
}

func (a *MobileAPI) GetSeatMap(ctx context.Context, eventID int64) (*domain.SeatMap, error) {
	var dto seatMapDTO
	if _, err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/asientos/evento/%d", eventID), nil, &dto); err != nil {
		return nil, err
	}

	m := &domain.SeatMap{EventID: dto.EventoID, Seats: make([]domain.Seat, 0, len(dto.Asientos))}
	if m.EventID == 0 {
		m.EventID = eventID
	}

	for _, s := range dto.Asientos {
		status, ok := domain.ParseSeatStatus(s.Estado)
		if !ok {
			a.c.logger.Warn("unknown seat status", slog.String("status", s.Estado), slog.String("seat", fmt.Sprintf("%s-%d", s.Fila, s.Numero)))
		}

		m.Seats = append(m.Seats, domain.Seat{
			Row:      s.Fila,
			Column:   s.Numero,
			Status:   status,
			Selected: s.Seleccionado,
		})
	}

	return m, nil
}

// GetCurrentSelection returns nil when the server has no selection for the
// event.
func (a *MobileAPI) GetCurrentSelection(ctx context.Context, eventID int64) (*domain.Selection, error) {
	var dto selectionDTO
	status, err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/sesion/seleccion/%d", eventID), nil, &dto)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	if status == http.StatusNoContent {
		return nil, nil
	}

	sel := &domain.Selection{EventID: dto.EventoID, ExpiresAt: dto.Expiracion}
	if sel.EventID == 0 {
		sel.EventID = eventID
	}

	for _, s := range dto.Asientos {
		if s.Numero == nil {
			continue
		}

		sel.Seats = append(sel.Seats, domain.SelectedSeat{
			Row:       s.Fila,
			Column:    *s.Numero,
			FirstName: deref(s.NombrePersona),
			LastName:  deref(s.ApellidoPersona),
		})
	}

	return sel, nil
}

func (a *MobileAPI) UpdateSelectedEvent(ctx context.Context, eventID int64) error {
	_, err := a.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/sesion/evento/%d", eventID), nil, nil)
	return err
}

func (a *MobileAPI) UpdateSelectedSeats(ctx context.Context, seats []domain.SelectedSeat) error {
	body := make([]selectedSeatDTO, 0, len(seats))
	for _, s := range seats {
		numero := s.Column
		body = append(body, selectedSeatDTO{
			Fila:            s.Row,
			Numero:          &numero,
			NombrePersona:   optional(s.FirstName),
			ApellidoPersona: optional(s.LastName),
		})
	}

	_, err := a.c.do(ctx, http.MethodPut, "/api/sesion/asientos", body, nil)
	return err
}

func (a *MobileAPI) BlockSeats(ctx context.Context, eventID int64) (*domain.BlockResult, error) {
	var dto blockResponseDTO
	if _, err := a.c.do(ctx, http.MethodPost, fmt.Sprintf("/api/asientos/bloquear/%d", eventID), nil, &dto); err != nil {
		return nil, err
	}

	res := &domain.BlockResult{
		Success: dto.Exitoso != nil && *dto.Exitoso,
		Message: deref(dto.Mensaje),
	}
	for _, s := range dto.AsientosBloqueados {
		res.Seats = append(res.Seats, domain.SeatKey{Row: s.Fila, Column: s.Numero})
	}

	return res, nil
}

func (a *MobileAPI) ProcessSale(ctx context.Context, req domain.SaleRequest) (*domain.SaleResult, error) {
	body := saleRequestDTO{EventoID: req.EventID, Asientos: make([]saleSeatDTO, 0, len(req.Seats))}
	for _, s := range req.Seats {
		body.Asientos = append(body.Asientos, saleSeatDTO{
			Fila:            s.Row,
			Numero:          s.Column,
			NombrePersona:   s.FirstName,
			ApellidoPersona: s.LastName,
		})
	}

	var dto saleResponseDTO
	if _, err := a.c.do(ctx, http.MethodPost, "/api/ventas", body, &dto); err != nil {
		return nil, err
	}

	res := &domain.SaleResult{
		SaleID:  dto.ID,
		EventID: dto.EventoID,
		Success: dto.Resultado,
		Message: deref(dto.Mensaje),
	}
	if res.Message == "" {
		res.Message = deref(dto.Descripcion)
	}
	if dto.FechaVenta != nil {
		res.Date = *dto.FechaVenta
	}
	if dto.PrecioVenta != nil {
		res.Price = *dto.PrecioVenta
	}

	return res, nil
}

func (d eventSummaryDTO) toDomain() domain.EventSummary {
	return domain.EventSummary{
		ID:              d.ID,
		Title:           d.Titulo,
		Summary:         deref(d.Resumen),
		Date:            d.Fecha,
		Address:         deref(d.Direccion),
		Price:           derefFloat(d.Precio),
		Cancelled:       d.Cancelado,
		TypeName:        deref(d.TipoNombre),
		TypeDescription: deref(d.TipoDescripcion),
	}
}

func (d eventDetailDTO) toDomain() *domain.EventDetail {
	detail := &domain.EventDetail{
		ID:              d.ID,
		CatalogID:       d.EventoIDCatedra,
		Title:           d.Titulo,
		Description:     deref(d.Descripcion),
		Summary:         deref(d.Resumen),
		Date:            d.Fecha,
		Address:         deref(d.Direccion),
		ImageURL:        deref(d.ImagenURL),
		Price:           derefFloat(d.Precio),
		Cancelled:       d.Cancelado,
		TypeName:        deref(d.TipoNombre),
		TypeDescription: deref(d.TipoDescripcion),
	}

	if d.FilaAsientos != nil {
		detail.Rows = *d.FilaAsientos
	}
	if d.ColumnAsientos != nil {
		detail.Columns = *d.ColumnAsientos
	}

	for _, i := range d.Integrantes {
		detail.Performers = append(detail.Performers, domain.Performer{
			Name:        deref(i.Nombre),
			Description: deref(i.Descripcion),
			ImageURL:    deref(i.ImagenURL),
		})
	}

	return detail
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
