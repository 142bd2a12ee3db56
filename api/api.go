// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/aurumchain/aurum/api/accounts"
	"github.com/aurumchain/aurum/api/events"
	"github.com/aurumchain/aurum/api/token"
	"github.com/aurumchain/aurum/api/utils"
	"github.com/aurumchain/aurum/eventdb"
	"github.com/aurumchain/aurum/health"
	"github.com/aurumchain/aurum/ledger"
)

var logger = logrus.WithField("pkg", "api")

type Options struct {
	AllowedOrigins string
}

// New returns the read-only query API of the ledger.
func New(l *ledger.Ledger, eventDB *eventdb.EventDB, healthStatus *health.Health, opts Options) http.HandlerFunc {
	origins := strings.Split(strings.TrimSpace(opts.AllowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}

	router := mux.NewRouter()
	token.New(l).Mount(router, "/token")
	accounts.New(l).Mount(router, "/accounts")
	if eventDB != nil {
		events.New(eventDB).Mount(router, "/events")
	}
	if healthStatus != nil {
		router.Path("/health").Methods(http.MethodGet).HandlerFunc(
			utils.WrapHandlerFunc(func(w http.ResponseWriter, _ *http.Request) error {
				status, err := healthStatus.Status()
				if err != nil {
					return err
				}
				if !status.Healthy {
					w.WriteHeader(http.StatusServiceUnavailable)
				}
				return utils.WriteJSON(w, status)
			}))
	}

	handler := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedHeaders([]string{"content-type"}),
	)(router)

	logger.WithField("origins", opts.AllowedOrigins).Debug("api router assembled")
	return handler.ServeHTTP
}
