package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	ds "github.com/oaiiae/huma-contacts/datastores"
)

type handler[I, O any] = func(context.Context, *I) (*O, error)

func handlerWithErrorHandler[I, O any](handler handler[I, O], do func(context.Context, error)) handler[I, O] {
	if do == nil {
		return handler
	}

	return func(ctx context.Context, i *I) (*O, error) {
		o, err := handler(ctx, i)
		if err != nil {
			do(ctx, err)
		}
		return o, err
	}
}

func opErrors(codes ...int) func(*huma.Operation) {
	return func(o *huma.Operation) { o.Errors = codes }
}

func opID(id string, tags ...string) func(*huma.Operation) {
	return func(o *huma.Operation) { o.OperationID, o.Tags = id, tags }
}

func opStatus(code int) func(*huma.Operation) {
	return func(o *huma.Operation) { o.DefaultStatus = code }
}

// opExactPath answers 404 to requests whose path is not exactly path.
// Needed on "/" which the standard mux treats as a catch-all.
func opExactPath(api huma.API, path string) func(*huma.Operation) {
	return func(o *huma.Operation) {
		o.Middlewares = append(o.Middlewares, func(ctx huma.Context, next func(huma.Context)) {
			if u := ctx.URL(); u.Path != path {
				_ = huma.WriteErr(api, ctx, http.StatusNotFound, "page not found")
				return
			}
			next(ctx)
		})
	}
}

// storeError maps store errors to their HTTP status.
func storeError(err error) error {
	switch {
	case errors.Is(err, ds.ErrObjectNotFound):
		return huma.Error404NotFound("id not found", err)
	default:
		return err
	}
}
