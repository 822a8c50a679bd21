// Package transport exposes HTTP and gRPC handlers.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/pipeline"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/service"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/pkg/safe"
	"go.uber.org/zap"
)

const (
	defaultSuspiciousLimit = 20
	defaultTopRiskLimit    = 10
)

// AnomalyHandler serves GET /v1/anomalies.
type AnomalyHandler struct {
	scanner    Scanner
	percentile int
	maxSpan    uint64
	logger     *zap.Logger
}

// NewAnomalyHandler returns an AnomalyHandler. percentile is used when the
// request does not carry one. maxSpan caps the number of heights one request
// may scan; zero disables the cap.
func NewAnomalyHandler(scanner Scanner, percentile int, maxSpan uint64, logger *zap.Logger) *AnomalyHandler {
	return &AnomalyHandler{
		scanner:    scanner,
		percentile: percentile,
		maxSpan:    maxSpan,
		logger:     logger.Named("anomalyHandler"),
	}
}

// Register mounts the handler on mux.
func (h *AnomalyHandler) Register(mux *http.ServeMux) {
	mux.Handle("GET /v1/anomalies", h)
}

type thresholdsResponse struct {
	FeeSpread    float64 `json:"fee_spread"`
	TxComplexity float64 `json:"tx_complexity"`
	FeePerTx     float64 `json:"fee_per_tx"`
}

type suspiciousBlock struct {
	Height       uint64  `json:"height"`
	FeeSpread    float64 `json:"fee_spread"`
	TxComplexity float64 `json:"tx_complexity"`
	FeePerTx     float64 `json:"fee_per_tx"`
}

type riskyBlock struct {
	Height    uint64  `json:"height"`
	RiskScore float64 `json:"risk_score"`
}

type anomaliesResponse struct {
	Percentile         int                `json:"percentile"`
	Thresholds         thresholdsResponse `json:"thresholds"`
	RowsTotal          int                `json:"rows_total"`
	RowsCleaned        int                `json:"rows_cleaned"`
	SuspiciousCount    int                `json:"suspicious_count"`
	DegenerateFeatures []string           `json:"degenerate_features"`
	Suspicious         []suspiciousBlock  `json:"suspicious"`
	TopRisk            []riskyBlock       `json:"top_risk"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type badRequestError struct {
	msg string
}

func (e badRequestError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return badRequestError{msg: fmt.Sprintf(format, args...)}
}

func (h *AnomalyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, suspiciousLimit, topLimit, err := h.parse(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	res, err := h.scanner.Scan(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	body, err := newAnomaliesResponse(res, suspiciousLimit, topLimit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, body)
}

func (h *AnomalyHandler) parse(r *http.Request) (req service.ScanRequest, suspiciousLimit, topLimit int, err error) {
	q := r.URL.Query()

	req.Coin = model.BTC
	if v := q.Get("coin"); v != "" {
		switch c := model.Coin(strings.ToUpper(v)); c {
		case model.BTC, model.LTC:
			req.Coin = c
		default:
			return req, 0, 0, badRequest("unsupported coin %q", v)
		}
	}
	req.Network = model.Mainnet
	if v := q.Get("network"); v != "" {
		switch n := model.Network(strings.ToLower(v)); n {
		case model.Mainnet, model.Testnet:
			req.Network = n
		default:
			return req, 0, 0, badRequest("unsupported network %q", v)
		}
	}

	if req.FromHeight, err = parseHeight(q.Get("from"), "from"); err != nil {
		return req, 0, 0, err
	}
	if req.ToHeight, err = parseHeight(q.Get("to"), "to"); err != nil {
		return req, 0, 0, err
	}
	if req.ToHeight < req.FromHeight {
		return req, 0, 0, badRequest("to (%d) is below from (%d)", req.ToHeight, req.FromHeight)
	}
	if h.maxSpan > 0 && req.ToHeight-req.FromHeight >= h.maxSpan {
		return req, 0, 0, badRequest("height range spans %d blocks, at most %d allowed", req.ToHeight-req.FromHeight+1, h.maxSpan)
	}

	req.Percentile = h.percentile
	if v := q.Get("percentile"); v != "" {
		if req.Percentile, err = strconv.Atoi(v); err != nil {
			return req, 0, 0, badRequest("percentile must be an integer")
		}
	}
	if err := pipeline.ValidatePercentile(req.Percentile); err != nil {
		return req, 0, 0, err
	}

	suspiciousLimit, topLimit = defaultSuspiciousLimit, defaultTopRiskLimit
	if v := q.Get("limit"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n < 0 {
			return req, 0, 0, badRequest("limit must be a non-negative integer")
		}
		suspiciousLimit, topLimit = n, n
	}
	return req, suspiciousLimit, topLimit, nil
}

func parseHeight(v, name string) (uint64, error) {
	if v == "" {
		return 0, badRequest("%s is required", name)
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, badRequest("%s must be a block height", name)
	}
	return n, nil
}

func newAnomaliesResponse(res *pipeline.Result, suspiciousLimit, topLimit int) (anomaliesResponse, error) {
	resp := anomaliesResponse{
		Percentile: res.Percentile,
		Thresholds: thresholdsResponse{
			FeeSpread:    res.Thresholds.FeeSpread,
			TxComplexity: res.Thresholds.TxComplexity,
			FeePerTx:     res.Thresholds.FeePerTx,
		},
		RowsTotal:          res.RowsIn,
		RowsCleaned:        res.RowsCleaned,
		SuspiciousCount:    res.SuspiciousCount(),
		DegenerateFeatures: append([]string{}, res.Normalization.Degenerate...),
		Suspicious:         make([]suspiciousBlock, 0),
		TopRisk:            make([]riskyBlock, 0),
	}

	for _, i := range res.SuspiciousRows() {
		if len(resp.Suspicious) == suspiciousLimit {
			break
		}
		height, err := rowHeight(res, i)
		if err != nil {
			return anomaliesResponse{}, err
		}
		resp.Suspicious = append(resp.Suspicious, suspiciousBlock{
			Height:       height,
			FeeSpread:    res.Features.FeeSpread[i],
			TxComplexity: res.Features.TxComplexity[i],
			FeePerTx:     res.Features.FeePerTx[i],
		})
	}
	for _, i := range res.Top(topLimit) {
		height, err := rowHeight(res, i)
		if err != nil {
			return anomaliesResponse{}, err
		}
		resp.TopRisk = append(resp.TopRisk, riskyBlock{Height: height, RiskScore: res.RiskScores[i]})
	}
	return resp, nil
}

func rowHeight(res *pipeline.Result, i int) (uint64, error) {
	h, ok := res.Height(i)
	if !ok {
		return 0, model.MissingColumn(model.ColumnHeight)
	}
	height, err := safe.Uint64FromFloat(h)
	if err != nil {
		return 0, &model.SchemaError{Column: model.ColumnHeight, Reason: fmt.Sprintf("row %d: %v", i, err)}
	}
	return height, nil
}

func (h *AnomalyHandler) writeError(w http.ResponseWriter, err error) {
	var badReq badRequestError
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &badReq), errors.Is(err, model.ErrInvalidPercentile):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrSchema), errors.Is(err, model.ErrEmptyDataset):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("anomaly scan failed", zap.Error(err))
	} else {
		h.logger.Debug("anomaly request rejected", zap.Int("status", status), zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *AnomalyHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}
