// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package events

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/aurumchain/aurum/api/utils"
	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/eventdb"
	"github.com/aurumchain/aurum/ledger"
)

type Events struct {
	db *eventdb.EventDB
}

func New(db *eventdb.EventDB) *Events {
	return &Events{db}
}

// parseFilter builds an event filter from query parameters.
//
//	kind      repeatable, event kind name
//	principal address matched against either side of the event
//	from, to  call time bounds, inclusive
//	offset, limit paging
//	order     asc (default) or desc
func parseFilter(req *http.Request) (*eventdb.Filter, error) {
	query := req.URL.Query()
	var filter eventdb.Filter

	for _, kind := range query["kind"] {
		filter.Kinds = append(filter.Kinds, ledger.EventKind(kind))
	}
	if principal := query.Get("principal"); principal != "" {
		addr, err := aurum.ParseAddress(principal)
		if err != nil {
			return nil, errors.WithMessage(err, "principal")
		}
		filter.Principal = addr
	}
	if fromStr := query.Get("from"); fromStr != "" {
		from, err := strconv.ParseUint(fromStr, 10, 64)
		if err != nil {
			return nil, errors.WithMessage(err, "from")
		}
		toStr := query.Get("to")
		if toStr == "" {
			return nil, errors.New("to: missing")
		}
		to, err := strconv.ParseUint(toStr, 10, 64)
		if err != nil {
			return nil, errors.WithMessage(err, "to")
		}
		filter.Range = &eventdb.Range{From: from, To: to}
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			return nil, errors.WithMessage(err, "limit")
		}
		var offset uint64
		if offsetStr := query.Get("offset"); offsetStr != "" {
			if offset, err = strconv.ParseUint(offsetStr, 10, 64); err != nil {
				return nil, errors.WithMessage(err, "offset")
			}
		}
		filter.Options = &eventdb.Options{Offset: offset, Limit: limit}
	}
	switch query.Get("order") {
	case "", "asc":
		filter.Order = eventdb.ASC
	case "desc":
		filter.Order = eventdb.DESC
	default:
		return nil, errors.New("order: expected asc or desc")
	}
	return &filter, nil
}

func (e *Events) handleFilter(w http.ResponseWriter, req *http.Request) error {
	filter, err := parseFilter(req)
	if err != nil {
		return utils.BadRequest(err)
	}
	events, err := e.db.Filter(filter)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, convertEvents(events))
}

func (e *Events) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(e.handleFilter))
}
