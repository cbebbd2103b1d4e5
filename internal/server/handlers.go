package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ja7ad/dcmodel/pkg/engine"
	"github.com/ja7ad/dcmodel/pkg/params"
	"github.com/ja7ad/dcmodel/pkg/report"
)

const _maxBody = 1 << 20

func (s *Server) healthz(c *gin.Context) error {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "cache": s.analyzer.Stats()})
	return nil
}

func (s *Server) defaults(c *gin.Context) error {
	c.JSON(http.StatusOK, params.Defaults())
	return nil
}

func (s *Server) evaluate(c *gin.Context) error {
	r, err := s.run(c)
	if err != nil {
		return err
	}
	// Encode before writing the status so a failure still yields an error body.
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", b)
	return nil
}

func (s *Server) exportPnL(c *gin.Context) error {
	r, err := s.run(c)
	if err != nil {
		return err
	}
	return writeCSV(c, report.PnLFile, func(w io.Writer) error { return report.WritePnLCSV(w, r.PnL) })
}

func (s *Server) exportCashFlow(c *gin.Context) error {
	r, err := s.run(c)
	if err != nil {
		return err
	}
	return writeCSV(c, report.CashFlowFile, func(w io.Writer) error { return report.WriteCashFlowCSV(w, r.CashFlow) })
}

// run decodes a (possibly partial) parameter set over the defaults and
// evaluates it. The optional "years" query overrides projectionYears.
func (s *Server) run(c *gin.Context) (*report.Report, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, _maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, newRequestError(fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
		}
		return nil, newRequestError(fmt.Errorf("reading body: %w", err), http.StatusBadRequest)
	}
	p, err := params.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, newRequestError(fmt.Errorf("decoding parameters: %w", err), http.StatusBadRequest)
	}
	if y := c.Query("years"); y != "" {
		n, err := strconv.Atoi(y)
		if err != nil {
			return nil, newRequestError(fmt.Errorf("years: %w", err), http.StatusBadRequest)
		}
		if n < 1 || n > params.MaxProjectionYears {
			return nil, newRequestError(fmt.Errorf("years %d: %w", n, engine.ErrInvalidHorizon), http.StatusBadRequest)
		}
		p.ProjectionYears = n
	}
	return s.analyzer.Run(c.Request.Context(), p)
}

func writeCSV(c *gin.Context, name string, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	return nil
}
