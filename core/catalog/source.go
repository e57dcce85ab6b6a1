package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"stock-terminal/core/database"
	"stock-terminal/core/stock"
	"stock-terminal/core/storage"
	"stock-terminal/core/utils"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// Source loads catalog definitions from one backing store.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Load reads the complete set of definitions.
	Load(ctx context.Context) (*Snapshot, error)
}

// Table names read by DatabaseSource.
const (
	ItemsTable = "catalog_items"
	ModsTable  = "catalog_mods"
)

var (
	requiredItemColumns = []string{"item", "name"}
	requiredModColumns  = []string{"mod_id", "name"}
)

// DatabaseSource reads definitions from the catalog tables.
//
// catalog_items columns: item, variant, name, mod_id, tooltip (lines
// separated by "\n"), registry_id, tags (comma separated), sort_order.
// Only item and name are required. catalog_mods (mod_id, name) is optional.
type DatabaseSource struct {
	db *gorm.DB
}

// NewDatabaseSource creates a database source. A nil db yields empty snapshots.
func NewDatabaseSource(db *gorm.DB) *DatabaseSource {
	return &DatabaseSource{db: db}
}

// Name returns "database".
func (s *DatabaseSource) Name() string {
	return "database"
}

// Load reads both catalog tables.
func (s *DatabaseSource) Load(ctx context.Context) (*Snapshot, error) {
	snap := NewSnapshot()
	if s.db == nil {
		return snap, nil
	}

	db := s.db.WithContext(ctx)

	present, err := hasColumns(db, ItemsTable, requiredItemColumns)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, fmt.Errorf("table %s is missing required columns %v", ItemsTable, requiredItemColumns)
	}

	err = scanTable(db, ItemsTable, func(row map[string]any) {
		def := ItemDef{
			Item:       field(row, "item"),
			Variant:    field(row, "variant"),
			Name:       field(row, "name"),
			ModID:      field(row, "mod_id"),
			RegistryID: field(row, "registry_id"),
			Tooltip:    utils.SplitList(row["tooltip"], "\n"),
			Tags:       utils.SplitList(row["tags"], ","),
		}
		def.Order = utils.ToInt(row["sort_order"])
		snap.AddItem(def)
	})
	if err != nil {
		return nil, err
	}

	present, err = hasColumns(db, ModsTable, requiredModColumns)
	if err != nil || !present {
		// Mods table is optional
		return snap, nil
	}

	err = scanTable(db, ModsTable, func(row map[string]any) {
		snap.AddMod(field(row, "mod_id"), field(row, "name"))
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// hasColumns reports whether table has every required column.
func hasColumns(db *gorm.DB, table string, required []string) (bool, error) {
	columns, err := database.GetTableColumns(db, table)
	if err != nil {
		return false, err
	}
	names := make([]string, 0, len(columns))
	for _, col := range columns {
		names = append(names, col.Field)
	}
	for _, col := range required {
		if !slices.Contains(names, col) {
			return false, nil
		}
	}
	return true, nil
}

// scanTable runs SELECT * on table and passes each row as a column map.
func scanTable(db *gorm.DB, table string, fn func(row map[string]any)) error {
	rows, err := db.Raw(fmt.Sprintf("SELECT * FROM %s", table)).Rows()
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("failed to get columns: %w", err)
	}

	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[strings.ToLower(col)] = values[i]
		}
		fn(row)
	}
	return rows.Err()
}

func field(row map[string]any, col string) string {
	return strings.TrimSpace(utils.ToString(row[col]))
}

// document is the JSON layout read and written by ObjectSource.
type document struct {
	Mods  []ModDef  `json:"mods"`
	Items []ItemDef `json:"items"`
}

// ParseDocument decodes a catalog JSON document.
func ParseDocument(data []byte) (*Snapshot, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	snap := NewSnapshot()
	for _, m := range doc.Mods {
		snap.AddMod(m.ID, m.Name)
	}
	for _, def := range doc.Items {
		snap.AddItem(def)
	}
	return snap, nil
}

// EncodeDocument encodes snap as a catalog JSON document with items ordered
// by identity and mods by id.
func EncodeDocument(snap *Snapshot) ([]byte, error) {
	doc := document{
		Mods:  make([]ModDef, 0, len(snap.Mods)),
		Items: make([]ItemDef, 0, len(snap.Items)),
	}
	for _, id := range slices.Sorted(maps.Keys(snap.Mods)) {
		doc.Mods = append(doc.Mods, ModDef{ID: id, Name: snap.Mods[id]})
	}
	for _, id := range slices.SortedFunc(maps.Keys(snap.Items), stock.Identity.Compare) {
		doc.Items = append(doc.Items, snap.Items[id])
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ObjectSource reads definitions from a JSON object in a storage bucket.
type ObjectSource struct {
	client     storage.Client
	bucket     string
	objectName string
}

// NewObjectSource creates a source reading bucket/objectName.
func NewObjectSource(client storage.Client, bucket, objectName string) *ObjectSource {
	return &ObjectSource{client: client, bucket: bucket, objectName: objectName}
}

// Name returns "storage".
func (s *ObjectSource) Name() string {
	return "storage"
}

// Load downloads and decodes the catalog document.
func (s *ObjectSource) Load(ctx context.Context) (*Snapshot, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, s.objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog object: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog object: %w", err)
	}
	return ParseDocument(data)
}

// Store uploads snap as the catalog document, creating the bucket if needed.
func (s *ObjectSource) Store(ctx context.Context, snap *Snapshot) error {
	data, err := EncodeDocument(snap)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to upload catalog object: %w", err)
	}
	return nil
}
