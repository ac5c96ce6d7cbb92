package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// itemCatalogo una fila del CSV: categoria;produto;quantidade. Categoria vacía = sin categoría.
type itemCatalogo struct {
	Categoria  string
	Produto    string
	Quantidade int32
}

// catalogoPorDefecto se usa cuando no se indica archivo.
var catalogoPorDefecto = []itemCatalogo{
	{Categoria: "Bebidas", Produto: "Refrigerante", Quantidade: 5},
	{Categoria: "", Produto: "Caneta", Quantidade: 3},
}

// decoderFor devuelve un reader que convierte a UTF-8 según charset.
func decoderFor(charset string, r io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.ReplaceAll(charset, "-", "")) {
	case "", "utf8":
		return r, nil
	case "iso88591", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("charset no soportado: %s", charset)
	}
}

// parseCatalogo lee el CSV separado por ';'. La primera fila es cabecera.
func parseCatalogo(r io.Reader) ([]itemCatalogo, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catálogo vacío")
		}
		return nil, fmt.Errorf("cabecera: %w", err)
	}
	var items []itemCatalogo
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		nome := strings.TrimSpace(rec[1])
		if nome == "" {
			return nil, fmt.Errorf("línea %d: produto sin nombre", line)
		}
		qtd, err := strconv.ParseInt(strings.TrimSpace(rec[2]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("línea %d: quantidade inválida %q", line, rec[2])
		}
		items = append(items, itemCatalogo{
			Categoria:  strings.TrimSpace(rec[0]),
			Produto:    nome,
			Quantidade: int32(qtd),
		})
	}
	return items, nil
}
