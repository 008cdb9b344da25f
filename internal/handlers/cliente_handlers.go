package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Werneck0live/brhelpers/internal/broker"
	"github.com/Werneck0live/brhelpers/internal/models"
	"github.com/Werneck0live/brhelpers/internal/repository"
	"github.com/Werneck0live/brhelpers/internal/utils"
	"github.com/Werneck0live/brhelpers/internal/validation"
	"github.com/Werneck0live/brhelpers/pkg/brasil"
)

const defaultTimeout = 5 * time.Second

type Repository interface {
	GetAll(ctx context.Context, limit, skip int64) ([]models.Cliente, error)
	Create(ctx context.Context, c *models.Cliente) (string, error)
	GetByID(ctx context.Context, id string) (*models.Cliente, error)
	Update(ctx context.Context, id string, p models.ClientePatch) error
	Replace(ctx context.Context, id string, c *models.Cliente) error
	Delete(ctx context.Context, id string) error
}

type Publisher interface {
	Publish(ctx context.Context, ev broker.Event) error
	Close() error
}

type ClienteHandler struct {
	Repo    Repository
	Pub     Publisher
	Log     *slog.Logger
	Timeout time.Duration // por requisição; zero usa 5s
}

func NewClienteHandler(repo Repository, pub Publisher, log *slog.Logger, timeout time.Duration) *ClienteHandler {
	return &ClienteHandler{Repo: repo, Pub: pub, Log: log, Timeout: timeout}
}

func (h *ClienteHandler) logger() *slog.Logger {
	if h.Log == nil {
		return slog.Default()
	}
	return h.Log
}

func (h *ClienteHandler) ctx(r *http.Request) (context.Context, context.CancelFunc) {
	t := h.Timeout
	if t <= 0 {
		t = defaultTimeout
	}
	return context.WithTimeout(r.Context(), t)
}

// garante o padrão /api/clientes/{documento}; aceita o documento com máscara
func parseIDFromPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 || parts[0] != "api" || parts[1] != "clientes" {
		return "", false
	}
	id := brasil.OnlyDigits(parts[2])
	return id, id != ""
}

func (h *ClienteHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeAndValidate responde 400 e devolve false quando o corpo não serve.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.DecodeStrict(r.Body, dst); err != nil {
		utils.BadRequest(w, utils.FormatDecodeError(err))
		return false
	}
	fields, err := validation.Validate(dst)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return false
	}
	if fields != nil {
		utils.ValidationFailed(w, fields)
		return false
	}
	return true
}

// writeRepoErr traduz os erros do repositório para status HTTP.
func (h *ClienteHandler) writeRepoErr(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrDuplicateDocumento):
		utils.WriteError(w, http.StatusConflict, "documento already exists")
	default:
		h.logger().Error("repository_error", "op", op, "err", err)
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

func (h *ClienteHandler) Clientes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// "getAll" com paginação (skip, limit)
func (h *ClienteHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := int64(50)
	skip := int64(0)
	if l := q.Get("limit"); l != "" {
		if v, err := strconv.ParseInt(l, 10, 64); err == nil && v > 0 && v <= 200 {
			limit = v
		}
	}
	if s := q.Get("skip"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil && v >= 0 {
			skip = v
		}
	}
	ctx, cancel := h.ctx(r)
	defer cancel()
	list, err := h.Repo.GetAll(ctx, limit, skip)
	if err != nil {
		h.writeRepoErr(w, "get_all", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, toResponses(list))
}

func (h *ClienteHandler) create(w http.ResponseWriter, r *http.Request) {
	var dto ClienteCreateDTO
	if !decodeAndValidate(w, r, &dto) {
		return
	}

	doc, tipo, err := normalizeDocumento(dto.Documento)
	if err != nil {
		utils.BadRequest(w, err.Error())
		return
	}
	c := models.Cliente{
		ID:            doc, // o documento é o id
		Documento:     doc,
		TipoDocumento: tipo,
		Nome:          strings.TrimSpace(dto.Nome),
		Telefone:      normalizeTelefone(dto.Telefone),
	}
	if c.DataNascimento, err = normalizeData(dto.DataNascimento); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}
	if c.RendaMensal, err = normalizeRenda(dto.RendaMensal); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	ctx, cancel := h.ctx(r)
	defer cancel()
	if _, err := h.Repo.Create(ctx, &c); err != nil {
		h.writeRepoErr(w, "create", err)
		return
	}

	h.publishEvent(broker.AcaoCadastro, &c)
	utils.WriteJSON(w, http.StatusCreated, toResponse(&c))
}

func (h *ClienteHandler) ClienteByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDFromPath(r.URL.Path)
	if !ok {
		utils.WriteError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		ctx, cancel := h.ctx(r)
		defer cancel()
		c, err := h.Repo.GetByID(ctx, id)
		if err != nil {
			h.writeRepoErr(w, "get_by_id", err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, toResponse(c))
	case http.MethodPatch:
		h.patch(w, r, id)
	case http.MethodPut:
		h.replace(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *ClienteHandler) patch(w http.ResponseWriter, r *http.Request, id string) {
	var dto ClientePatchDTO
	if !decodeAndValidate(w, r, &dto) {
		return
	}

	ctx, cancel := h.ctx(r)
	defer cancel()

	existing, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		h.writeRepoErr(w, "get_by_id", err)
		return
	}

	// monta o patch só com os campos presentes
	var p models.ClientePatch
	if dto.Documento != nil {
		doc, tipo, err := normalizeDocumento(*dto.Documento)
		if err != nil {
			utils.BadRequest(w, err.Error())
			return
		}
		if doc != existing.Documento {
			p.Documento, p.TipoDocumento = &doc, &tipo
		}
	}
	if dto.Nome != nil {
		nome := strings.TrimSpace(*dto.Nome)
		p.Nome = &nome
	}
	if dto.Telefone != nil {
		tel := normalizeTelefone(*dto.Telefone)
		p.Telefone = &tel
	}
	if dto.DataNascimento != nil {
		data, err := normalizeData(*dto.DataNascimento)
		if err != nil {
			utils.BadRequest(w, err.Error())
			return
		}
		p.DataNascimento = &data
	}
	if dto.RendaMensal != nil {
		renda, err := normalizeRenda(*dto.RendaMensal)
		if err != nil {
			utils.BadRequest(w, err.Error())
			return
		}
		p.RendaMensal = &renda
	}

	if p.Empty() {
		utils.WriteJSON(w, http.StatusOK, toResponse(existing))
		return
	}
	if err := h.Repo.Update(ctx, id, p); err != nil {
		h.writeRepoErr(w, "update", err)
		return
	}

	// devolve o doc atualizado
	updated, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		h.writeRepoErr(w, "get_by_id", err)
		return
	}
	h.publishEvent(broker.AcaoEdicao, updated)
	utils.WriteJSON(w, http.StatusOK, toResponse(updated))
}

func (h *ClienteHandler) replace(w http.ResponseWriter, r *http.Request, id string) {
	var dto ClientePutDTO
	if !decodeAndValidate(w, r, &dto) {
		return
	}

	ctx, cancel := h.ctx(r)
	defer cancel()

	current, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		h.writeRepoErr(w, "get_by_id", err)
		return
	}

	// documento ausente mantém o gravado (um PATCH pode ter trocado o documento
	// sem mudar o {id}); se vier, precisa ser o {id} ou o documento atual
	raw := current.Documento
	if dto.Documento != nil {
		raw = *dto.Documento
	}
	doc, tipo, err := normalizeDocumento(raw)
	if err != nil {
		utils.BadRequest(w, err.Error())
		return
	}
	if doc != id && doc != current.Documento {
		utils.BadRequest(w, "documento in body must match the resource id in path")
		return
	}

	// documento COMPLETO que substitui o atual (PUT = replace)
	newDoc := models.Cliente{
		ID:            id,
		Documento:     doc,
		TipoDocumento: tipo,
		Nome:          strings.TrimSpace(dto.Nome),
		Telefone:      normalizeTelefone(dto.Telefone),
		CreatedAt:     current.CreatedAt,
		UpdatedAt:     time.Now().UTC(),
	}
	if newDoc.DataNascimento, err = normalizeData(dto.DataNascimento); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}
	if newDoc.RendaMensal, err = normalizeRenda(dto.RendaMensal); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	if err := h.Repo.Replace(ctx, id, &newDoc); err != nil {
		h.writeRepoErr(w, "replace", err)
		return
	}

	h.publishEvent(broker.AcaoEdicao, &newDoc)
	utils.WriteJSON(w, http.StatusOK, toResponse(&newDoc))
}

func (h *ClienteHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	ctx, cancel := h.ctx(r)
	defer cancel()

	// busca antes para ter o nome no evento
	c, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		h.writeRepoErr(w, "get_by_id", err)
		return
	}
	if err := h.Repo.Delete(ctx, id); err != nil {
		h.writeRepoErr(w, "delete", err)
		return
	}

	h.publishEvent(broker.AcaoExclusao, c)
	w.WriteHeader(http.StatusNoContent)
}

// publishEvent não falha a requisição: o cadastro já foi gravado.
func (h *ClienteHandler) publishEvent(acao string, c *models.Cliente) {
	if h.Pub == nil || c == nil {
		return
	}
	ev := broker.NewEvent(acao, c.ID, brasil.DocumentMask(c.Documento), c.DisplayName())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.Pub.Publish(ctx, ev); err != nil {
		h.logger().Warn("publish_event_failed", "acao", acao, "cliente_id", c.ID, "err", err)
	}
}
