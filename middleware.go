package gatekit

import (
	"errors"
	"net/http"
)

// Middleware provides HTTP middleware around the authorization and
// quota strategies. It only consumes an already-resolved Principal;
// token parsing and session handling belong to the identity layer in
// front of it.
type Middleware struct {
	service      *Service
	getPrincipal func(*http.Request) Principal
	errorHandler func(http.ResponseWriter, *http.Request, error)
}

// MiddlewareOption configures the Middleware.
type MiddlewareOption func(*Middleware)

// NewMiddleware creates a new Middleware instance.
//
// Example:
//
//	mw := gatekit.NewMiddleware(service,
//	    gatekit.WithPrincipalExtractor(func(r *http.Request) gatekit.Principal {
//	        return identity.Resolve(r)
//	    }),
//	)
func NewMiddleware(service *Service, opts ...MiddlewareOption) *Middleware {
	m := &Middleware{
		service:      service,
		getPrincipal: defaultGetPrincipal,
		errorHandler: defaultErrorHandler,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// WithPrincipalExtractor sets a custom function to extract the
// principal from a request.
func WithPrincipalExtractor(fn func(*http.Request) Principal) MiddlewareOption {
	return func(m *Middleware) {
		m.getPrincipal = fn
	}
}

// WithErrorHandler sets a custom error handler for middleware denials.
func WithErrorHandler(fn func(http.ResponseWriter, *http.Request, error)) MiddlewareOption {
	return func(m *Middleware) {
		m.errorHandler = fn
	}
}

func defaultGetPrincipal(r *http.Request) Principal {
	return GetPrincipal(r.Context())
}

// defaultErrorHandler maps the error taxonomy to HTTP status codes.
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case IsUnauthorized(err):
		status = http.StatusUnauthorized
	case IsForbidden(err):
		status = http.StatusForbidden
	case IsNotFound(err):
		status = http.StatusNotFound
	case IsConflict(err):
		status = http.StatusConflict
	}

	detail := http.StatusText(status)
	var gerr *Error
	if errors.As(err, &gerr) && gerr.Detail() != "" {
		detail = gerr.Detail()
	}

	http.Error(w, detail, status)
}

// Attach injects a Checker for the request's principal into the
// context. It never denies by itself; downstream checks decide.
func (m *Middleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := m.getPrincipal(r)
		checker := NewChecker(principal, m.service)
		ctx := WithChecker(WithPrincipal(r.Context(), principal), checker)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuthenticated rejects requests from the anonymous principal.
//
// Example:
//
//	router.With(mw.RequireAuthenticated).Post("/courses", createCourse)
func (m *Middleware) RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := m.getPrincipal(r)
		if err := RequireAuthenticated(principal.UserID); err != nil {
			m.errorHandler(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAction runs the terminal roles-and-authorship check for an
// action on the element extracted from the request.
//
// Example:
//
//	mw.RequireAction(gatekit.ActionUpdate, func(r *http.Request) string {
//	    return chi.URLParam(r, "courseUID")
//	})
func (m *Middleware) RequireAction(action Action, elementFromRequest func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := m.getPrincipal(r)
			checker := NewChecker(principal, m.service)
			if err := checker.Authorize(r.Context(), action, elementFromRequest(r)); err != nil {
				m.errorHandler(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireFeature verifies quota headroom for a feature in the
// principal's organization before the handler runs. The handler still
// owns reporting consumption through IncreaseFeatureUsage once the
// action succeeds.
func (m *Middleware) RequireFeature(feature Feature) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := m.getPrincipal(r)
			if err := m.service.CheckLimitsWithUsage(r.Context(), feature, principal.OrgID); err != nil {
				m.errorHandler(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
