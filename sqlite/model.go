package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/ldraw"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ ldraw.ModelService = (*ModelService)(nil)

// ModelService implements ldraw.ModelService using SQLite.
type ModelService struct {
	db *DB
}

// NewModelService creates a new ModelService.
func NewModelService(db *DB) *ModelService {
	return &ModelService{db: db}
}

// hashPart computes the xxHash of a part's JSON form as a hex string.
func hashPart(doc *ldraw.Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}

// CreateModel stores the root document, one row per part and every part
// reference in a single transaction.
func (s *ModelService) CreateModel(ctx context.Context, m *ldraw.Model, doc *ldraw.Document) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if doc == nil {
		return ldraw.Errorf(ldraw.EINVALID, "model document required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO models (id, name, part_type, part_count, subparts, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, m.Name, doc.PartType, len(doc.Parts), len(doc.Subparts), createdAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	if err := insertRefs(ctx, tx, id, "", doc.Subparts); err != nil {
		return err
	}

	ids := make([]string, 0, len(doc.Parts))
	for partID := range doc.Parts {
		ids = append(ids, partID)
	}
	slices.Sort(ids)

	for _, partID := range ids {
		part := doc.Parts[partID]
		hash, err := hashPart(part)
		if err != nil {
			return fmt.Errorf("failed to hash part %s: %w", partID, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO parts (model_id, part_id, part_type, subparts, lines, tris, quads, optlines, hash)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, partID, part.PartType, len(part.Subparts), len(part.Lines), len(part.Tris),
			len(part.Quads), len(part.OptLines), hash)
		if err != nil {
			return err
		}

		if err := insertRefs(ctx, tx, id, partID, part.Subparts); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	m.ID = id
	m.PartType = doc.PartType
	m.PartCount = len(doc.Parts)
	m.Subparts = len(doc.Subparts)
	m.CreatedAt = createdAt
	return nil
}

// insertRefs stores the references of one document in file order.
// The root document uses an empty parent.
func insertRefs(ctx context.Context, tx *sql.Tx, modelID, parent string, refs []*ldraw.PartReference) error {
	for i, ref := range refs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO refs (model_id, parent, position, part_id, color, matrix)
			VALUES (?, ?, ?, ?, ?, ?)
		`, modelID, parent, i, ref.PartID, ref.Color.String(), formatMatrix(ref.Matrix))
		if err != nil {
			return err
		}
	}
	return nil
}

// FindModelByID retrieves a model by ID.
func (s *ModelService) FindModelByID(ctx context.Context, id string) (*ldraw.Model, error) {
	var m ldraw.Model
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, part_type, part_count, subparts, created_at
		FROM models
		WHERE id = ?
	`, id).Scan(&m.ID, &m.Name, &m.PartType, &m.PartCount, &m.Subparts, &createdAt)

	if err == sql.ErrNoRows {
		return nil, ldraw.Errorf(ldraw.ENOTFOUND, "model not found")
	}
	if err != nil {
		return nil, err
	}

	m.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// FindModelParts retrieves the parts stored for a model ordered by part ID.
func (s *ModelService) FindModelParts(ctx context.Context, modelID string) ([]*ldraw.PartSummary, error) {
	if _, err := s.FindModelByID(ctx, modelID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT part_id, part_type, subparts, lines, tris, quads, optlines, hash
		FROM parts
		WHERE model_id = ?
		ORDER BY part_id ASC
	`, modelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parts []*ldraw.PartSummary
	for rows.Next() {
		var p ldraw.PartSummary
		if err := rows.Scan(&p.PartID, &p.PartType, &p.Subparts, &p.Lines, &p.Tris,
			&p.Quads, &p.OptLines, &p.Hash); err != nil {
			return nil, err
		}
		parts = append(parts, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return parts, nil
}

// FindModelRefs retrieves the part references stored for one document of a
// model in file order. An empty parent selects the root document.
func (s *ModelService) FindModelRefs(ctx context.Context, modelID, parent string) ([]*ldraw.PartReference, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT part_id, color, matrix
		FROM refs
		WHERE model_id = ? AND parent = ?
		ORDER BY position ASC
	`, modelID, parent)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []*ldraw.PartReference
	for rows.Next() {
		var ref ldraw.PartReference
		var color, matrix string
		if err := rows.Scan(&ref.PartID, &color, &matrix); err != nil {
			return nil, err
		}
		ref.Color = ldraw.Convert(color)
		if ref.Matrix, err = parseMatrix(matrix); err != nil {
			return nil, err
		}
		refs = append(refs, &ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}
