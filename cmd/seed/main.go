// seed genera un script SQL para poblar la tabla de proveedores a partir de
// un catálogo XML (Proveedores.xml). Los catálogos exportados de sistemas
// legados suelen venir en ISO-8859-1, por eso el CharsetReader.
//
// Uso: go run ./cmd/seed [ruta/Proveedores.xml]
// Por defecto busca Proveedores.xml en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_suppliers.sql
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type catalogo struct {
	Proveedores []proveedor `xml:"proveedor"`
}

type proveedor struct {
	Nombre string `xml:"nombre,attr"`
	Email  string `xml:"email,attr"`
}

func main() {
	xmlPath := "Proveedores.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var cat catalogo
	dec := xml.NewDecoder(f)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&cat); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	proveedores := cat.Proveedores
	sort.Slice(proveedores, func(i, j int) bool {
		return proveedores[i].Nombre < proveedores[j].Nombre
	})

	var b strings.Builder
	b.WriteString("-- 002_seed_suppliers.sql\n")
	b.WriteString("-- Generado por cmd/seed; no editar a mano.\n\n")
	for _, p := range proveedores {
		if p.Nombre == "" {
			continue
		}
		fmt.Fprintf(&b,
			"INSERT INTO suppliers (id, name, contact_email)\nVALUES (gen_random_uuid(), '%s', '%s')\nON CONFLICT DO NOTHING;\n\n",
			escape(p.Nombre), escape(p.Email),
		)
	}

	outPath := filepath.Join("internal", "infrastructure", "postgres", "migrations", "002_seed_suppliers.sql")
	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Escrito %s (%d proveedores)\n", outPath, len(proveedores))
}

// escape duplica comillas simples para literales SQL.
func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
