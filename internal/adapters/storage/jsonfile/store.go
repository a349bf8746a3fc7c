// Package jsonfile persiste cada colección como un documento JSON
// plano en disco: cada escritura relee el archivo, muta el slice y lo
// reescribe entero. Un mutex por repo serializa el ciclo
// read-modify-write (un único escritor por colección), que es lo mínimo
// para no pisar updates concurrentes. No hay locking entre procesos.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// readCollection decodifica el archivo en out.
// Archivo inexistente o vacío = colección vacía, no es error.
func readCollection(path string, out any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("jsonfile: read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("jsonfile: decode %s: %w", path, err)
	}
	return nil
}

// writeCollection reescribe el archivo completo, indentado con dos
// espacios (el formato histórico de los data files), vía tmp + rename.
func writeCollection(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: encode %s: %w", path, err)
	}
	b = append(b, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("jsonfile: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("jsonfile: rename %s: %w", tmp, err)
	}
	return nil
}
