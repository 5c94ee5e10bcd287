package account

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sellhub/account-market/api/web"
	"github.com/sellhub/account-market/api/weberr"
	"github.com/sellhub/account-market/validate"
)

func errNoAccount(id int) error {
	return fmt.Errorf("account[%d] does not exist", id)
}

// parseFilters coerces the query string into Filters. Numeric filter keys
// that are present but empty or unparseable are dropped; sort keys are a
// closed set and an unknown value is rejected.
func parseFilters(r *http.Request) (Filters, error) {
	q := r.URL.Query()

	f := Filters{
		Platform: q.Get("platform"),
		Category: q.Get("category"),
	}

	if raw := q.Get("minFollowers"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			f.MinFollowers = &n
		}
	}
	if raw := q.Get("maxPrice"); raw != "" {
		if p, err := strconv.ParseFloat(raw, 64); err == nil {
			f.MaxPrice = &p
		}
	}

	if raw := q.Get("sortBy"); raw != "" {
		key, err := ParseSortKey(raw)
		if err != nil {
			return Filters{}, err
		}
		f.SortBy = key
	}
	if raw := q.Get("sortOrder"); raw != "" {
		order, err := ParseSortOrder(raw)
		if err != nil {
			return Filters{}, err
		}
		f.SortOrder = order
	}

	return f, nil
}

func HandleList(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		f, err := parseFilters(r)
		if err != nil {
			return weberr.NewError(err, err.Error(), http.StatusBadRequest)
		}

		return web.Respond(ctx, w, store.List(f), http.StatusOK)
	}
}

func HandleShow(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamID(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}

		a, ok := store.Get(id)
		if !ok {
			return weberr.NotFound(errNoAccount(id))
		}

		return web.Respond(ctx, w, a, http.StatusOK)
	}
}

func HandleCreate(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var na AccountNew
		if err := web.Decode(w, r, &na); err != nil {
			return weberr.BadRequest(err)
		}

		if err := validate.Check(na); err != nil {
			fields, _ := validate.Fields(err)
			return weberr.Validation(err, fields)
		}

		return web.Respond(ctx, w, store.Create(na), http.StatusCreated)
	}
}

func HandleUpdate(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamID(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}

		var up AccountUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.BadRequest(err)
		}

		if err := validate.Check(up); err != nil {
			fields, _ := validate.Fields(err)
			return weberr.Validation(err, fields)
		}

		a, ok := store.Update(id, up)
		if !ok {
			return weberr.NotFound(errNoAccount(id))
		}

		return web.Respond(ctx, w, a, http.StatusOK)
	}
}

func HandleDelete(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamID(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}

		if !store.Delete(id) {
			return weberr.NotFound(errNoAccount(id))
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
