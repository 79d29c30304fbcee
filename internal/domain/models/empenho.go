package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Empenho is a single budgetary commitment record published by the municipal
// transparency portal. The json and bson tags carry the portal's display
// spellings, which are also the storage field names; only the identifier is
// renamed between the wire ("id", a hex string) and storage ("_id").
type Empenho struct {
	ID                    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Numero                string             `json:"Número" bson:"Número" binding:"required"`
	Data                  string             `json:"Data" bson:"Data" binding:"required"`
	Credor                string             `json:"Credor" bson:"Credor" binding:"required"`
	Alteracao             string             `json:"Alteração" bson:"Alteração" binding:"required"`
	Empenhado             string             `json:"Empenhado" bson:"Empenhado" binding:"required"`
	Liquidado             string             `json:"Liquidado" bson:"Liquidado" binding:"required"`
	Pago                  string             `json:"Pago" bson:"Pago" binding:"required"`
	Atualizado            string             `json:"Atualizado" bson:"Atualizado" binding:"required"`
	LinkDetalhes          string             `json:"link_Detalhes" bson:"link_Detalhes" binding:"required"`
	Poder                 string             `json:"Poder" bson:"Poder" binding:"required"`
	Funcao                string             `json:"Função" bson:"Função" binding:"required"`
	ElementoDeDespesa     string             `json:"Elemento de Despesa" bson:"Elemento de Despesa" binding:"required"`
	UnidAdministradora    string             `json:"Unid. Administradora" bson:"Unid. Administradora" binding:"required"`
	Subfuncao             string             `json:"Subfunção" bson:"Subfunção" binding:"required"`
	Subelemento           string             `json:"Subelemento" bson:"Subelemento" binding:"required"`
	UnidOrcamentaria      string             `json:"Unid. Orçamentária" bson:"Unid. Orçamentária" binding:"required"`
	FonteDeRecurso        string             `json:"Fonte de recurso" bson:"Fonte de recurso" binding:"required"`
	ProjetoAtividade      string             `json:"Projeto/Atividade" bson:"Projeto/Atividade" binding:"required"`
	CategoriasDeBaseLegal string             `json:"Categorias de base legal" bson:"Categorias de base legal" binding:"required"`
	Historico             string             `json:"Histórico" bson:"Histórico" binding:"required"`
	Itens                 []any              `json:"Item(ns)" bson:"Item(ns)" binding:"required"`
}

// EmpenhoUpdate carries the optional field set for partial updates. Nil fields
// were not supplied (or were null) and leave the stored values untouched. The
// identifier is never part of an update.
type EmpenhoUpdate struct {
	Numero                *string `json:"Número"`
	Data                  *string `json:"Data"`
	Credor                *string `json:"Credor"`
	Alteracao             *string `json:"Alteração"`
	Empenhado             *string `json:"Empenhado"`
	Liquidado             *string `json:"Liquidado"`
	Pago                  *string `json:"Pago"`
	Atualizado            *string `json:"Atualizado"`
	LinkDetalhes          *string `json:"link_Detalhes"`
	Poder                 *string `json:"Poder"`
	Funcao                *string `json:"Função"`
	ElementoDeDespesa     *string `json:"Elemento de Despesa"`
	UnidAdministradora    *string `json:"Unid. Administradora"`
	Subfuncao             *string `json:"Subfunção"`
	Subelemento           *string `json:"Subelemento"`
	UnidOrcamentaria      *string `json:"Unid. Orçamentária"`
	FonteDeRecurso        *string `json:"Fonte de recurso"`
	ProjetoAtividade      *string `json:"Projeto/Atividade"`
	CategoriasDeBaseLegal *string `json:"Categorias de base legal"`
	Historico             *string `json:"Histórico"`
	Itens                 []any   `json:"Item(ns)"`
}

// SetDocument builds the $set payload for a partial update, keyed by the
// storage field names and containing exactly the supplied fields. Explicit
// zero values (such as an empty string) are kept; nil fields are dropped.
func (u EmpenhoUpdate) SetDocument() bson.M {
	set := bson.M{}

	if u.Numero != nil {
		set["Número"] = *u.Numero
	}
	if u.Data != nil {
		set["Data"] = *u.Data
	}
	if u.Credor != nil {
		set["Credor"] = *u.Credor
	}
	if u.Alteracao != nil {
		set["Alteração"] = *u.Alteracao
	}
	if u.Empenhado != nil {
		set["Empenhado"] = *u.Empenhado
	}
	if u.Liquidado != nil {
		set["Liquidado"] = *u.Liquidado
	}
	if u.Pago != nil {
		set["Pago"] = *u.Pago
	}
	if u.Atualizado != nil {
		set["Atualizado"] = *u.Atualizado
	}
	if u.LinkDetalhes != nil {
		set["link_Detalhes"] = *u.LinkDetalhes
	}
	if u.Poder != nil {
		set["Poder"] = *u.Poder
	}
	if u.Funcao != nil {
		set["Função"] = *u.Funcao
	}
	if u.ElementoDeDespesa != nil {
		set["Elemento de Despesa"] = *u.ElementoDeDespesa
	}
	if u.UnidAdministradora != nil {
		set["Unid. Administradora"] = *u.UnidAdministradora
	}
	if u.Subfuncao != nil {
		set["Subfunção"] = *u.Subfuncao
	}
	if u.Subelemento != nil {
		set["Subelemento"] = *u.Subelemento
	}
	if u.UnidOrcamentaria != nil {
		set["Unid. Orçamentária"] = *u.UnidOrcamentaria
	}
	if u.FonteDeRecurso != nil {
		set["Fonte de recurso"] = *u.FonteDeRecurso
	}
	if u.ProjetoAtividade != nil {
		set["Projeto/Atividade"] = *u.ProjetoAtividade
	}
	if u.CategoriasDeBaseLegal != nil {
		set["Categorias de base legal"] = *u.CategoriasDeBaseLegal
	}
	if u.Historico != nil {
		set["Histórico"] = *u.Historico
	}
	if u.Itens != nil {
		set["Item(ns)"] = u.Itens
	}

	return set
}

// EmpenhoCollection wraps list responses in a named object so the payload is
// never a bare top-level JSON array.
type EmpenhoCollection struct {
	Empenhos []Empenho `json:"empenhos"`
}
