// Copyright (C) 2025 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package lokiclient

import "errors"

// Error kinds surfaced by the client. Callers match them with errors.Is;
// every failure is synchronous and no partial result accompanies one.
var (
	// ErrConnection covers network, TLS, and timeout failures reaching Loki.
	ErrConnection = errors.New("connection to loki failed")

	// ErrAuth is returned for HTTP 401 and 403 responses.
	ErrAuth = errors.New("loki authentication failed")

	// ErrQuery is returned for non-200 responses, undecodable bodies, and
	// responses carrying status "error".
	ErrQuery = errors.New("loki query failed")

	// ErrInvalidArgument is returned when mutually-exclusive query options
	// are combined or omitted, or a severity tier is unrecognized.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLabelNotFound is returned when application label discovery
	// exhausts every candidate label without a match.
	ErrLabelNotFound = errors.New("no label found")
)
