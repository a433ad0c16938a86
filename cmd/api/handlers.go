package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"cartflow/pkg/cart"
	"cartflow/pkg/metrics"
	"cartflow/pkg/order"
	"cartflow/pkg/otel"
	"cartflow/pkg/user"
)

func newRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(traceMiddleware, metricsMiddleware)

	r.HandleFunc("/order/create", createOrderHandler).Methods(http.MethodPost)
	r.HandleFunc("/orders", listOrdersHandler).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id}", getOrderHandler).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id}", deleteOrderHandler).Methods(http.MethodDelete)
	r.HandleFunc("/products", listProductsHandler).Methods(http.MethodGet)
	r.HandleFunc("/users", listUsersHandler).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", getUserHandler).Methods(http.MethodGet)
	r.HandleFunc("/cart", getCartHandler).Methods(http.MethodGet)

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return r
}

// createOrderRequest is the order-creation body. Unknown fields are
// rejected at decode time.
type createOrderRequest struct {
	Items []order.Item `json:"items"`
}

// createOrderHandler validates and stores a submitted order.
// @Summary Create order
// @Accept json
// @Produce json
// @Param order body createOrderRequest true "Order items"
// @Success 201 {object} order.Order
// @Failure 400 {string} string "empty items, negative values or unknown fields"
// @Router /order/create [post]
func createOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrderHandler")
	defer span.End()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var req createOrderRequest
	if err := dec.Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	o := order.Order{ID: uuid.NewString(), Items: req.Items, CreatedAt: time.Now().UTC()}
	if err := o.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := repo.Create(ctx, o); err != nil {
		log.Error("create order", zap.String("trace_id", otel.GetTraceID(ctx)), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if publisher != nil {
		if err := publisher.OrderCreated(ctx, o); err != nil {
			log.Warn("publish order event", zap.String("order_id", o.ID), zap.Error(err))
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(o)
}

// listOrdersHandler lists stored orders.
// @Summary List orders
// @Produce json
// @Success 200 {array} order.Order
// @Router /orders [get]
func listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listOrdersHandler")
	defer span.End()

	orders, err := repo.List(ctx)
	if err != nil {
		log.Error("list orders", zap.String("trace_id", otel.GetTraceID(ctx)), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// getOrderHandler retrieves an order by ID.
// @Summary Get order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} order.Order
// @Router /orders/{id} [get]
func getOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getOrderHandler")
	defer span.End()

	id := mux.Vars(r)["id"]
	o, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error("get order", zap.String("trace_id", otel.GetTraceID(ctx)), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(o)
}

// deleteOrderHandler removes an order.
// @Summary Delete order
// @Param id path string true "Order ID"
// @Success 204
// @Router /orders/{id} [delete]
func deleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteOrderHandler")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, order.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error("delete order", zap.String("trace_id", otel.GetTraceID(ctx)), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listProductsHandler serves the static catalog.
// @Summary List products
// @Produce json
// @Success 200 {array} catalog.Product
// @Router /products [get]
func listProductsHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otel.AddSpan(r.Context(), "listProductsHandler")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cat.Products())
}

// listUsersHandler lists all users.
// @Summary List users
// @Produce json
// @Success 200 {array} user.User
// @Router /users [get]
func listUsersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listUsersHandler")
	defer span.End()

	all, err := users.FindAll(ctx)
	if err != nil {
		log.Error("list users", zap.String("trace_id", otel.GetTraceID(ctx)), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(all)
}

// getUserHandler retrieves a user by ID.
// @Summary Get user
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} user.User
// @Router /users/{id} [get]
func getUserHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getUserHandler")
	defer span.End()

	id := mux.Vars(r)["id"]
	u, err := users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error("get user", zap.String("trace_id", otel.GetTraceID(ctx)), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

// getCartHandler serves the shared cart snapshot from redis.
// @Summary Get cart snapshot
// @Produce json
// @Success 200 {array} cart.Line
// @Failure 503 {string} string "no cart storage configured"
// @Router /cart [get]
func getCartHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getCartHandler")
	defer span.End()

	if cartStorage == nil {
		http.Error(w, "cart storage unavailable", http.StatusServiceUnavailable)
		return
	}
	lines, err := cartStorage.Load(ctx)
	if err != nil {
		log.Error("load cart", zap.String("trace_id", otel.GetTraceID(ctx)), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if lines == nil {
		lines = []cart.Line{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lines)
}

func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.InjectTracing(r.Context(), tracer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the response code for the metrics labels.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil {
			next.ServeHTTP(w, r)
			return
		}
		handler := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				handler = tmpl
			}
		}
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		m.Requests.WithLabelValues(handler, strconv.Itoa(rec.status)).Inc()
		m.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))
	})
}
