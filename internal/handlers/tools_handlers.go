package handlers

import (
	"net/http"
	"strconv"

	"github.com/Werneck0live/brhelpers/internal/utils"
	"github.com/Werneck0live/brhelpers/pkg/brasil"
)

// ToolsHandler expõe as funções do pacote brasil sem estado nem persistência.
type ToolsHandler struct{}

// getOnly recusa métodos diferentes de GET e exige o parâmetro "valor".
func getOnly(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return "", false
	}
	v := r.URL.Query().Get("valor")
	if v == "" {
		utils.BadRequest(w, "valor is required")
		return "", false
	}
	return v, true
}

// GET /api/tools/documento?valor=11144477735
func (ToolsHandler) Documento(w http.ResponseWriter, r *http.Request) {
	v, ok := getOnly(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"digitos":   brasil.OnlyDigits(v),
		"formatado": brasil.DocumentMask(v),
		"tipo":      brasil.DocumentTypeOf(v),
		"valido":    brasil.ValidDocument(v),
	})
}

// GET /api/tools/telefone?valor=(11) 98888-8888
func (ToolsHandler) Telefone(w http.ResponseWriter, r *http.Request) {
	v, ok := getOnly(w, r)
	if !ok {
		return
	}
	national := brasil.NationalNumber(v)
	ddd := brasil.PhoneDDD(v)
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"digitos":    national,
		"formatado":  brasil.PhoneMask(national),
		"valido":     brasil.ValidPhone(v),
		"ddd":        ddd,
		"ddd_valido": ddd != "" && brasil.ValidDDD(ddd),
	})
}

// GET /api/tools/mascara?valor=01310100&mascara=#####-###
func (ToolsHandler) Mascara(w http.ResponseWriter, r *http.Request) {
	v, ok := getOnly(w, r)
	if !ok {
		return
	}
	tpl := r.URL.Query().Get("mascara")
	if tpl == "" {
		utils.BadRequest(w, "mascara is required")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"resultado": brasil.Mask(v, tpl),
	})
}

// GET /api/tools/moeda?valor=1.234,5&simbolo=false
func (ToolsHandler) Moeda(w http.ResponseWriter, r *http.Request) {
	v, ok := getOnly(w, r)
	if !ok {
		return
	}
	simbolo := true
	if s := r.URL.Query().Get("simbolo"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			utils.BadRequest(w, "simbolo must be true or false")
			return
		}
		simbolo = b
	}
	n, err := brasil.ParseNumber(v, 0)
	if err != nil {
		utils.BadRequest(w, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"valor":     n,
		"formatado": brasil.FormatBRL(n, simbolo),
	})
}

// GET /api/tools/data?valor=31/12/2024 10:30
func (ToolsHandler) Data(w http.ResponseWriter, r *http.Request) {
	v, ok := getOnly(w, r)
	if !ok {
		return
	}
	d, err := brasil.ParseDate(v, "")
	if err != nil {
		utils.BadRequest(w, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"data":       d,
		"formato_br": brasil.ValidDateFormat(v, brasil.LayoutDateBR) || brasil.ValidDateFormat(v, brasil.LayoutDateTime),
	})
}

// GET /api/tools/cep?valor=01310100
func (ToolsHandler) CEP(w http.ResponseWriter, r *http.Request) {
	v, ok := getOnly(w, r)
	if !ok {
		return
	}
	d := brasil.OnlyDigits(v)
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"formatado": brasil.CEPMask(d),
		"valido":    len(d) == 8,
	})
}
