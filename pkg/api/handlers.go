package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/ssargent/gearsave/pkg/cursor"
	"github.com/ssargent/gearsave/pkg/gear"
	"github.com/ssargent/gearsave/pkg/logger"
	"github.com/ssargent/gearsave/pkg/storage"
	"github.com/ssargent/gearsave/pkg/strcodec"
)

// Server holds the API server state
type Server struct {
	store   SnapshotStore
	codec   *gear.Codec
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(store SnapshotStore, codec *gear.Codec, config ServerConfig, metrics *Metrics) *Server {
	if codec == nil {
		codec = gear.NewCodec()
	}
	return &Server{
		store:   store,
		codec:   codec,
		config:  config,
		metrics: metrics,
	}
}

// decodeStatus maps a codec error to an HTTP status
func decodeStatus(err error) int {
	switch {
	case errors.Is(err, gear.ErrUnknownKind):
		return http.StatusNotFound
	case errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, cursor.ErrTruncated),
		errors.Is(err, strcodec.ErrMalformedString),
		errors.Is(err, gear.ErrInvalidRecord):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// kindParam resolves the {kind} URL parameter
func kindParam(r *http.Request) (gear.Kind, error) {
	return gear.ParseKind(chi.URLParam(r, "kind"))
}

// decode decodes body and records the outcome
func (s *Server) decode(kind gear.Kind, body []byte) (gear.Record, error) {
	start := time.Now()
	rec, err := s.codec.Decode(kind, body)
	s.metrics.RecordCodecOperation("decode", string(kind), err == nil, len(body), time.Since(start))
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"kind": kind, "bytes": len(body)}).WithError(err).Debug("decode failed")
	}
	return rec, err
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API and the active string encoding
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	APIResponse
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{
		"status":          "healthy",
		"string_encoding": s.codec.StringCodec().Name(),
	})
}

// handleDecode godoc
//
//	@Summary		Decode a binary record
//	@Description	Decode a GearPC or GearController record into JSON, or YAML with ?format=yaml
//	@Tags			records
//	@Accept			octet-stream
//	@Produce		json
//	@Param			kind	path		string	true	"Record kind"
//	@Param			format	query		string	false	"yaml for a YAML response"
//	@Success		200		{object}	APIResponse
//	@Failure		404		{object}	APIResponse
//	@Failure		413		{object}	APIResponse
//	@Failure		422		{object}	APIResponse
//	@Router			/records/{kind}/decode [post]
//	@Security		ApiKeyAuth
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	kind, err := kindParam(r)
	if err != nil {
		sendError(w, err.Error(), decodeStatus(err))
		return
	}
	body, err := readBody(r, s.config.MaxRecordSize)
	if err != nil {
		sendError(w, err.Error(), decodeStatus(err))
		return
	}

	rec, err := s.decode(kind, body)
	if err != nil {
		sendError(w, err.Error(), decodeStatus(err))
		return
	}

	sendRecord(w, r, rec)
}

// handleEncode godoc
//
//	@Summary		Encode a JSON record
//	@Description	Encode a record in its JSON form. Opaque blocks must keep their sizes.
//	@Tags			records
//	@Accept			json
//	@Produce		octet-stream
//	@Param			kind	path	string	true	"Record kind"
//	@Success		200
//	@Failure		400	{object}	APIResponse
//	@Failure		422	{object}	APIResponse
//	@Router			/records/{kind}/encode [post]
//	@Security		ApiKeyAuth
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	kind, err := kindParam(r)
	if err != nil {
		sendError(w, err.Error(), decodeStatus(err))
		return
	}
	body, err := readBody(r, s.config.MaxRecordSize)
	if err != nil {
		sendError(w, err.Error(), decodeStatus(err))
		return
	}

	rec, err := gear.NewEmptyRecord(kind)
	if err != nil {
		sendError(w, err.Error(), decodeStatus(err))
		return
	}
	if err := json.Unmarshal(body, rec); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	if err := rec.Validate(); err != nil {
		sendError(w, err.Error(), decodeStatus(err))
		return
	}

	start := time.Now()
	out := s.codec.Encode(rec)
	s.metrics.RecordCodecOperation("encode", string(kind), true, len(out), time.Since(start))
	sendBinary(w, out)
}

// handleVerify godoc
//
//	@Summary		Verify a binary record
//	@Description	Decode and re-encode a record, reporting the first differing offset
//	@Tags			records
//	@Accept			octet-stream
//	@Produce		json
//	@Param			kind	path		string	true	"Record kind"
//	@Success		200		{object}	VerifyResponse
//	@Failure		422		{object}	APIResponse
//	@Router			/records/{kind}/verify [post]
//	@Security		ApiKeyAuth
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	kind, err := kindParam(r)
	if err != nil {
		sendError(w, err.Error(), decodeStatus(err))
		return
	}
	body, err := readBody(r, s.config.MaxRecordSize)
	if err != nil {
		sendError(w, err.Error(), decodeStatus(err))
		return
	}

	start := time.Now()
	err = s.codec.Verify(kind, body)
	s.metrics.RecordCodecOperation("verify", string(kind), err == nil, len(body), time.Since(start))

	var mismatch *gear.MismatchError
	switch {
	case err == nil:
		sendSuccess(w, VerifyResponse{OK: true, Offset: -1, InputSize: len(body), OutputSize: len(body)})
	case errors.As(err, &mismatch):
		sendSuccess(w, VerifyResponse{
			OK:         false,
			Offset:     mismatch.Offset,
			InputSize:  mismatch.WantLen,
			OutputSize: mismatch.GotLen,
		})
	default:
		sendError(w, err.Error(), decodeStatus(err))
	}
}

// handleCreateSnapshot godoc
//
//	@Summary		Archive a binary record
//	@Description	Decode-validate a record and store its bytes unchanged
//	@Tags			snapshots
//	@Accept			octet-stream
//	@Produce		json
//	@Param			kind	path		string	true	"Record kind"
//	@Success		200		{object}	SnapshotResponse
//	@Failure		422		{object}	APIResponse
//	@Router			/records/{kind}/snapshots [post]
//	@Security		ApiKeyAuth
func (s *Server) handleCreateSnapshot(w http.ResponseWriter, r *http.Request) {
	kind, err := kindParam(r)
	if err != nil {
		sendError(w, err.Error(), decodeStatus(err))
		return
	}
	body, err := readBody(r, s.config.MaxRecordSize)
	if err != nil {
		sendError(w, err.Error(), decodeStatus(err))
		return
	}
	if _, err := s.decode(kind, body); err != nil {
		sendError(w, err.Error(), decodeStatus(err))
		return
	}

	id, err := s.store.Create(string(kind), body)
	s.metrics.RecordSnapshotOperation("create", err == nil)
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to store snapshot: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Log.WithFields(logrus.Fields{"id": id.String(), "kind": kind, "bytes": len(body)}).Info("snapshot stored")
	sendSuccess(w, SnapshotResponse{
		ID:        id.String(),
		Kind:      string(kind),
		Size:      len(body),
		CreatedAt: id.Time(),
	})
}

// handleListSnapshots godoc
//
//	@Summary		List snapshots
//	@Tags			snapshots
//	@Produce		json
//	@Success		200	{object}	APIResponse
//	@Router			/snapshots [get]
//	@Security		ApiKeyAuth
func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	infos, err := s.store.List()
	s.metrics.RecordSnapshotOperation("list", err == nil)
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to list snapshots: %v", err), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, infos)
}

// readSnapshot loads the snapshot named by the {id} URL parameter,
// writing the error response itself when it fails
func (s *Server) readSnapshot(w http.ResponseWriter, r *http.Request) (*storage.Snapshot, bool) {
	id, err := storage.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	snap, err := s.store.Read(id)
	s.metrics.RecordSnapshotOperation("read", err == nil)
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to read snapshot: %v", err), http.StatusInternalServerError)
		return nil, false
	}
	return snap, true
}

// handleGetSnapshot returns the archived bytes unchanged
//
//	@Summary		Fetch snapshot bytes
//	@Tags			snapshots
//	@Produce		octet-stream
//	@Param			id	path	string	true	"Snapshot KSUID"
//	@Success		200
//	@Failure		404	{object}	APIResponse
//	@Router			/snapshots/{id} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.readSnapshot(w, r)
	if !ok {
		return
	}
	w.Header().Set("X-Record-Kind", snap.Kind)
	sendBinary(w, snap.Data)
}

// handleGetSnapshotRecord godoc
//
//	@Summary		Fetch a snapshot decoded
//	@Description	Decode an archived record into JSON, or YAML with ?format=yaml
//	@Tags			snapshots
//	@Produce		json
//	@Param			id		path		string	true	"Snapshot KSUID"
//	@Param			format	query		string	false	"yaml for a YAML response"
//	@Success		200		{object}	SnapshotResponse
//	@Failure		404		{object}	APIResponse
//	@Failure		422		{object}	APIResponse
//	@Router			/snapshots/{id}/record [get]
//	@Security		ApiKeyAuth
func (s *Server) handleGetSnapshotRecord(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.readSnapshot(w, r)
	if !ok {
		return
	}
	kind, err := gear.ParseKind(snap.Kind)
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rec, err := s.decode(kind, snap.Data)
	if err != nil {
		sendError(w, err.Error(), decodeStatus(err))
		return
	}
	sendRecord(w, r, SnapshotResponse{
		ID:        snap.ID.String(),
		Kind:      snap.Kind,
		Size:      len(snap.Data),
		CreatedAt: snap.CreatedAt,
		Record:    rec,
	})
}

// handleDeleteSnapshot godoc
//
//	@Summary		Delete a snapshot
//	@Tags			snapshots
//	@Produce		json
//	@Param			id	path		string	true	"Snapshot KSUID"
//	@Success		200	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/snapshots/{id} [delete]
//	@Security		ApiKeyAuth
func (s *Server) handleDeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	id, err := storage.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, err.Error(), http.StatusNotFound)
		return
	}
	err = s.store.Delete(id)
	s.metrics.RecordSnapshotOperation("delete", err == nil)
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to delete snapshot: %v", err), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, map[string]string{"deleted": id.String()})
}
