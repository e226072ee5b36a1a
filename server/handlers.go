package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"

	"svm"
	"svm/config"
	"svm/debug"
	"svm/diagram"
	"svm/geometry"
	"svm/load"
	"svm/types"

	"github.com/go-chi/chi/v5"
	"github.com/vmihailenco/msgpack/v5"
	"gonum.org/v1/plot/vg"
)

// 内容类型
const (
	contentJSON    = "application/json"
	contentMsgpack = "application/msgpack"
)

var errBadRequest = errors.New("请求参数错误")

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeData(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) params(r *http.Request) (types.RenderParameters, error) {
	return load.ParseQuery(r.URL.Query(), s.cfg.Params())
}

func (s *Server) handleSVM(w http.ResponseWriter, r *http.Request) {
	p, err := s.params(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, r, http.StatusOK, svm.Evaluate(s.log, p))
}

func (s *Server) handleScale(w http.ResponseWriter, r *http.Request) {
	p, err := s.params(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	query := r.URL.Query()
	width, err := load.Value{Value: query.Get("width")}.ParsePositive(800)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	height, err := load.Value{Value: query.Get("height")}.ParsePositive(600)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	padding := load.Value{Value: query.Get("padding")}.ParseFloat(types.DefaultPaddingPx)
	s.writeData(w, r, http.StatusOK, geometry.Frame(p.Udc, width, height, padding))
}

func (s *Server) sweep(r *http.Request) (*debug.Record, error) {
	p, err := s.params(r)
	if err != nil {
		return nil, err
	}
	query := r.URL.Query()
	magnitude := load.Value{Value: query.Get("magnitude")}.ParseFloat(geometry.InscribedRadius(p.Udc))
	steps := load.Value{Value: query.Get("steps")}.ParseInt(s.cfg.SweepSteps)
	if math.Abs(magnitude) > types.MaxVolts || steps < 1 || steps > config.MaxSweepSteps {
		return nil, errBadRequest
	}
	return debug.Sweep(magnitude, p, steps), nil
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	record, err := s.sweep(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, r, http.StatusOK, record)
}

func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	record, err := s.sweep(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	c := &debug.Charts{Record: record, Log: s.log}
	c.Handler(w, r)
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	contentType, ok := diagram.ContentTypes[format]
	if !ok {
		http.NotFound(w, r)
		return
	}
	p, err := s.params(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	d, err := diagram.Render(svm.Evaluate(s.log, p))
	if err != nil {
		s.log.Error().Err(err).Msg("矢量图生成失败")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	if err := d.WriteTo(w, format, 6*vg.Inch); err != nil {
		s.log.Error().Err(err).Msg("矢量图输出失败")
	}
}

// writeData 按 Accept 选择 msgpack 或 JSON
// 先编码到缓冲区, 编码失败时返回 500 而不是空的 200 响应
func (s *Server) writeData(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	contentType := contentJSON
	var err error
	if strings.Contains(r.Header.Get("Accept"), contentMsgpack) {
		contentType = contentMsgpack
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		err = enc.Encode(v)
	} else {
		err = json.NewEncoder(&buf).Encode(v)
	}
	if err != nil {
		s.log.Error().Err(err).Str("query", r.URL.RawQuery).Msg("响应编码失败")
		http.Error(w, "响应编码失败", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.log.Debug().Err(err).Msg("响应写入失败")
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Debug().Err(err).Str("query", r.URL.RawQuery).Msg("请求参数错误")
	s.writeData(w, r, http.StatusBadRequest, map[string]string{"error": err.Error()})
}
