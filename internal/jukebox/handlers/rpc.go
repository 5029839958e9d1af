package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gartstein/jukebox/internal/jukebox/middleware"
	"github.com/gartstein/jukebox/internal/jukebox/models"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PathPrefix is where the procedures are mounted.
const PathPrefix = "/trpc/"

// SiteController defines the business logic interface
// that the RPC procedures will invoke.
type SiteController interface {
	CreateLead(ctx context.Context, in *models.CreateLeadInput) (*models.Lead, error)
	ListLeads(ctx context.Context) ([]models.Lead, error)
	UpdateLeadStatus(ctx context.Context, in *models.UpdateLeadStatusInput) (*models.Lead, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
	SearchLocations(ctx context.Context, in *models.SearchLocationsInput) ([]models.Location, error)
	CreateLocation(ctx context.Context, in *models.CreateLocationInput) (*models.Location, error)
	ListProductFeatures(ctx context.Context) ([]models.ProductFeature, error)
	ListBusinessSolutions(ctx context.Context) ([]models.BusinessSolution, error)
	GetContentPage(ctx context.Context, slug string) (*models.ContentPage, error)
	CreateSubscription(ctx context.Context, in *models.CreateSubscriptionInput) (*models.Subscription, error)
}

type procedureKind int

const (
	query procedureKind = iota
	mutation
)

// procedure is one callable entry of the RPC surface. raw is nil when the
// caller sent no input.
type procedure struct {
	name string
	kind procedureKind
	call func(ctx context.Context, raw json.RawMessage) (interface{}, error)
}

// RPCHandler serves the site procedures over HTTP. Queries are GET
// requests carrying their input in the "input" query parameter; mutations
// are POST requests with a JSON body.
type RPCHandler struct {
	service SiteController
	logger  *zap.Logger
	mux     *runtime.ServeMux
	now     func() time.Time
}

// NewRPCHandler constructs an RPCHandler with every procedure registered.
func NewRPCHandler(service SiteController, logger *zap.Logger) (*RPCHandler, error) {
	h := &RPCHandler{
		service: service,
		logger:  logger.Named("rpc_handler"),
		now:     time.Now,
	}
	h.mux = runtime.NewServeMux(runtime.WithRoutingErrorHandler(h.routingError))

	for _, p := range h.procedures() {
		method := http.MethodGet
		if p.kind == mutation {
			method = http.MethodPost
		}
		if err := h.mux.HandlePath(method, PathPrefix+p.name, h.serve(p)); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *RPCHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *RPCHandler) procedures() []procedure {
	return []procedure{
		{name: "healthcheck", kind: query, call: h.healthcheck},
		{name: "createLead", kind: mutation, call: h.createLead},
		{name: "getLeads", kind: query, call: h.getLeads},
		{name: "updateLeadStatus", kind: mutation, call: h.updateLeadStatus},
		{name: "getLocations", kind: query, call: h.getLocations},
		{name: "searchLocations", kind: query, call: h.searchLocations},
		{name: "createLocation", kind: mutation, call: h.createLocation},
		{name: "getProductFeatures", kind: query, call: h.getProductFeatures},
		{name: "getBusinessSolutions", kind: query, call: h.getBusinessSolutions},
		{name: "getContentPage", kind: query, call: h.getContentPage},
		{name: "createSubscription", kind: mutation, call: h.createSubscription},
	}
}

func (h *RPCHandler) serve(p procedure) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		raw, err := readInput(r, p.kind)
		if err == nil {
			var data interface{}
			data, err = p.call(r.Context(), raw)
			if err == nil {
				middleware.RecordProcedure(p.name, "OK")
				h.writeResult(w, data)
				return
			}
		}

		st := h.mapServiceError(err)
		middleware.RecordProcedure(p.name, errorCode(st.Code()))
		h.writeError(w, st)
	}
}

// routingError answers requests that match no procedure, or match one
// under the wrong HTTP method.
func (h *RPCHandler) routingError(
	_ context.Context,
	_ *runtime.ServeMux,
	_ runtime.Marshaler,
	w http.ResponseWriter,
	r *http.Request,
	httpStatus int,
) {
	var st *status.Status
	switch httpStatus {
	case http.StatusMethodNotAllowed:
		st = status.Newf(codes.Unimplemented, "unsupported %s request to %s", r.Method, r.URL.Path)
	default:
		st = status.Newf(codes.NotFound, "no procedure found on path %q", r.URL.Path)
	}
	h.writeError(w, st)
}

type healthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *RPCHandler) healthcheck(_ context.Context, _ json.RawMessage) (interface{}, error) {
	return healthStatus{Status: "ok", Timestamp: h.now().UTC()}, nil
}

func (h *RPCHandler) createLead(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var in models.CreateLeadInput
	if err := decodeInput(raw, &in, true); err != nil {
		return nil, err
	}
	return h.service.CreateLead(ctx, &in)
}

func (h *RPCHandler) getLeads(ctx context.Context, _ json.RawMessage) (interface{}, error) {
	leads, err := h.service.ListLeads(ctx)
	return nonNil(leads), err
}

func (h *RPCHandler) updateLeadStatus(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var in models.UpdateLeadStatusInput
	if err := decodeInput(raw, &in, true); err != nil {
		return nil, err
	}
	return h.service.UpdateLeadStatus(ctx, &in)
}

func (h *RPCHandler) getLocations(ctx context.Context, _ json.RawMessage) (interface{}, error) {
	locations, err := h.service.ListLocations(ctx)
	return nonNil(locations), err
}

func (h *RPCHandler) searchLocations(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var in models.SearchLocationsInput
	if err := decodeInput(raw, &in, false); err != nil {
		return nil, err
	}
	locations, err := h.service.SearchLocations(ctx, &in)
	return nonNil(locations), err
}

func (h *RPCHandler) createLocation(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var in models.CreateLocationInput
	if err := decodeInput(raw, &in, true); err != nil {
		return nil, err
	}
	return h.service.CreateLocation(ctx, &in)
}

func (h *RPCHandler) getProductFeatures(ctx context.Context, _ json.RawMessage) (interface{}, error) {
	features, err := h.service.ListProductFeatures(ctx)
	return nonNil(features), err
}

func (h *RPCHandler) getBusinessSolutions(ctx context.Context, _ json.RawMessage) (interface{}, error) {
	solutions, err := h.service.ListBusinessSolutions(ctx)
	return nonNil(solutions), err
}

func (h *RPCHandler) getContentPage(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var slug string
	if err := decodeInput(raw, &slug, true); err != nil {
		return nil, err
	}
	return h.service.GetContentPage(ctx, slug)
}

func (h *RPCHandler) createSubscription(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var in models.CreateSubscriptionInput
	if err := decodeInput(raw, &in, true); err != nil {
		return nil, err
	}
	return h.service.CreateSubscription(ctx, &in)
}
