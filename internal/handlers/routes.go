package handlers

import "net/http"

func NewRouter(cli *ClienteHandler, tools ToolsHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", cli.Health)
	mux.HandleFunc("/api/clientes", cli.Clientes)
	mux.HandleFunc("/api/clientes/", cli.ClienteByID)

	mux.HandleFunc("/api/tools/documento", tools.Documento)
	mux.HandleFunc("/api/tools/telefone", tools.Telefone)
	mux.HandleFunc("/api/tools/mascara", tools.Mascara)
	mux.HandleFunc("/api/tools/moeda", tools.Moeda)
	mux.HandleFunc("/api/tools/data", tools.Data)
	mux.HandleFunc("/api/tools/cep", tools.CEP)
	return mux
}
