package admin

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Werneck0live/brhelpers/internal/models"
	"github.com/Werneck0live/brhelpers/internal/repository"
	"github.com/Werneck0live/brhelpers/pkg/brasil"
)

//go:embed seeds/clientes.json
var clientesJSON []byte

type seedItem struct {
	Documento      string `json:"documento"`
	Nome           string `json:"nome"`
	Telefone       string `json:"telefone"`
	DataNascimento string `json:"data_nascimento"`
	RendaMensal    string `json:"renda_mensal"`
}

// ClienteCreator é o pedaço do repositório que o seed usa.
type ClienteCreator interface {
	Create(ctx context.Context, c *models.Cliente) (string, error)
}

// toCliente normaliza um item do seed; false quando o item não é aproveitável.
func toCliente(s seedItem, log *slog.Logger) (models.Cliente, bool) {
	doc := brasil.OnlyDigits(s.Documento)
	if !brasil.ValidDocument(doc) {
		log.Warn("seed_skip_invalid_documento", "raw", s.Documento)
		return models.Cliente{}, false
	}
	data, err := brasil.ParseDate(s.DataNascimento, "")
	if err != nil {
		log.Warn("seed_skip_invalid_data", "documento", doc, "raw", s.DataNascimento)
		return models.Cliente{}, false
	}
	data, _, _ = strings.Cut(data, " ")
	renda, err := brasil.ParseNumber(s.RendaMensal, 0)
	if err != nil {
		log.Warn("seed_skip_invalid_renda", "documento", doc, "raw", s.RendaMensal)
		return models.Cliente{}, false
	}

	return models.Cliente{
		ID:             doc, // o documento é o id
		Documento:      doc,
		TipoDocumento:  string(brasil.DocumentTypeOf(doc)),
		Nome:           strings.TrimSpace(s.Nome),
		Telefone:       brasil.NationalNumber(s.Telefone),
		DataNascimento: data,
		RendaMensal:    renda,
	}, true
}

// Idempotente: cria se não existir; se já existir, ignora.
func SeedClientes(ctx context.Context, repo ClienteCreator, log *slog.Logger) error {
	return seed(ctx, repo, log, clientesJSON)
}

func seed(ctx context.Context, repo ClienteCreator, log *slog.Logger, raw []byte) error {
	if log == nil {
		log = slog.Default()
	}
	var items []seedItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return err
	}

	created := 0
	for _, s := range items {
		c, ok := toCliente(s, log)
		if !ok {
			continue
		}

		// timeout curto por item pra não travar
		ictx, cancel := context.WithTimeout(ctx, 3*time.Second)
		_, err := repo.Create(ictx, &c)
		cancel()

		if err != nil {
			if errors.Is(err, repository.ErrDuplicateDocumento) {
				log.Info("seed_cliente_exists", "documento", brasil.DocumentMask(c.Documento))
				continue
			}
			return err
		}
		created++
		log.Info("seed_cliente_created", "documento", brasil.DocumentMask(c.Documento))
	}

	log.Info("seed_clientes_done", "count", len(items), "created", created)
	return nil
}
