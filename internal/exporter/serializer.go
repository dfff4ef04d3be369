// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package exporter serializes vault contents into the interchange formats
// offered by the export flow: CSV, plaintext JSON, and password-protected
// JSON.
package exporter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-warden/internal/crypto"
	"github.com/MKhiriev/go-warden/internal/service"
	"github.com/MKhiriev/go-warden/models"
)

// csvHeader is the column layout of a CSV export. It stays import-compatible
// with other password managers, so the order is load-bearing.
var csvHeader = []string{
	"folder", "favorite", "type", "name", "notes",
	"login_uri", "login_username", "login_password", "login_totp",
}

// serializer is the default [service.Exporter] implementation.
type serializer struct {
	keychain crypto.KeyChainService
}

// NewSerializer constructs the vault serializer. keychain seals
// password-protected exports and may be nil when only plaintext formats are
// used.
func NewSerializer(keychain crypto.KeyChainService) service.Exporter {
	return &serializer{keychain: keychain}
}

// Serialize renders folders and items in the requested format.
func (s *serializer) Serialize(folders []models.Folder, items []models.VaultItem, format models.ExportFormat) (string, error) {
	switch format.Kind {
	case models.ExportFormatCSV:
		return s.serializeCSV(folders, items)
	case models.ExportFormatJSON:
		return s.serializeJSON(folders, items)
	case models.ExportFormatEncryptedJSON:
		plain, err := s.serializeJSON(folders, items)
		if err != nil {
			return "", err
		}
		if s.keychain == nil {
			return "", fmt.Errorf("password-protected export requires a keychain service")
		}
		sealed, err := s.keychain.SealExport(plain, format.Password)
		if err != nil {
			return "", fmt.Errorf("seal export: %w", err)
		}
		return sealed, nil
	default:
		return "", fmt.Errorf("unsupported export format %d", format.Kind)
	}
}

func (s *serializer) serializeCSV(folders []models.Folder, items []models.VaultItem) (string, error) {
	folderNames := make(map[string]string, len(folders))
	for _, folder := range folders {
		folderNames[folder.ID] = folder.Name
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, item := range items {
		record := []string{
			folderNames[item.FolderID],
			"", // favorite is not tracked locally
			item.Type.String(),
			item.Name,
			item.Notes,
			"", "", "", "",
		}
		if item.Login != nil {
			record[5] = strings.Join(item.Login.URIs, ",")
			record[6] = item.Login.Username
			record[7] = item.Login.Password
			record[8] = item.Login.TOTP
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}

// jsonExport mirrors the plaintext JSON document layout.
type jsonExport struct {
	Encrypted bool         `json:"encrypted"`
	Folders   []jsonFolder `json:"folders"`
	Items     []jsonItem   `json:"items"`
}

type jsonFolder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type jsonItem struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organizationId,omitempty"`
	FolderID       string     `json:"folderId,omitempty"`
	Type           int        `json:"type"`
	Name           string     `json:"name"`
	Notes          string     `json:"notes,omitempty"`
	Login          *jsonLogin `json:"login,omitempty"`
}

type jsonLogin struct {
	URIs     []jsonURI `json:"uris,omitempty"`
	Username string    `json:"username,omitempty"`
	Password string    `json:"password,omitempty"`
	TOTP     string    `json:"totp,omitempty"`
}

type jsonURI struct {
	URI string `json:"uri"`
}

func (s *serializer) serializeJSON(folders []models.Folder, items []models.VaultItem) (string, error) {
	doc := jsonExport{
		Encrypted: false,
		Folders:   make([]jsonFolder, 0, len(folders)),
		Items:     make([]jsonItem, 0, len(items)),
	}

	for _, folder := range folders {
		doc.Folders = append(doc.Folders, jsonFolder{ID: folder.ID, Name: folder.Name})
	}

	for _, item := range items {
		out := jsonItem{
			ID:             item.ID,
			OrganizationID: item.OrganizationID,
			FolderID:       item.FolderID,
			Type:           int(item.Type),
			Name:           item.Name,
			Notes:          item.Notes,
		}
		if item.Login != nil {
			login := &jsonLogin{
				Username: item.Login.Username,
				Password: item.Login.Password,
				TOTP:     item.Login.TOTP,
			}
			for _, uri := range item.Login.URIs {
				login.URIs = append(login.URIs, jsonURI{URI: uri})
			}
			out.Login = login
		}
		doc.Items = append(doc.Items, out)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}
	return string(raw), nil
}
