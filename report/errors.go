// SPDX-License-Identifier: MIT

package report

import "errors"

// ErrNoData indicates a chart or sheet was requested for an empty series.
var ErrNoData = errors.New("report: no data to render")
