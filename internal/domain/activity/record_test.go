package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	doc := DocumentRef{Type: DocumentTypeQuotes, ID: 7}

	t.Run("creates record successfully", func(t *testing.T) {
		record, err := NewRecord(1, 2, "Created quote #7", TypeNameCreate, doc, "alice")

		require.NoError(t, err)
		assert.NotNil(t, record)
		assert.Equal(t, int64(1), record.CustomerID)
		assert.Equal(t, int64(2), record.StatusID)
		assert.Equal(t, "Created quote #7", record.Activity)
		assert.Equal(t, TypeNameCreate, record.TypeName)
		assert.Equal(t, doc, record.Document)
		assert.Equal(t, "alice", record.UserOwner)
		assert.False(t, record.CreatedAt.IsZero())
		assert.Zero(t, record.ID)
	})

	t.Run("fails with non-positive customer id", func(t *testing.T) {
		record, err := NewRecord(0, 2, "text", TypeNameCreate, doc, "alice")

		assert.Error(t, err)
		assert.Nil(t, record)
		assert.Contains(t, err.Error(), "Customer ID")
	})

	t.Run("fails with non-positive status id", func(t *testing.T) {
		record, err := NewRecord(1, -1, "text", TypeNameCreate, doc, "alice")

		assert.Error(t, err)
		assert.Nil(t, record)
		assert.Contains(t, err.Error(), "Status ID")
	})

	t.Run("fails with empty activity text", func(t *testing.T) {
		record, err := NewRecord(1, 2, "", TypeNameCreate, doc, "alice")

		assert.Error(t, err)
		assert.Nil(t, record)
		assert.Contains(t, err.Error(), "Activity text")
	})

	t.Run("fails with empty type name", func(t *testing.T) {
		record, err := NewRecord(1, 2, "text", "", doc, "alice")

		assert.Error(t, err)
		assert.Nil(t, record)
	})

	t.Run("fails with invalid document type", func(t *testing.T) {
		bad := DocumentRef{Type: DocumentType("Leads"), ID: 7}
		record, err := NewRecord(1, 2, "text", TypeNameCreate, bad, "alice")

		assert.Error(t, err)
		assert.Nil(t, record)
		assert.Contains(t, err.Error(), "Unknown document type")
	})

	t.Run("fails with non-positive document id", func(t *testing.T) {
		bad := DocumentRef{Type: DocumentTypeOrders, ID: 0}
		record, err := NewRecord(1, 2, "text", TypeNameCreate, bad, "alice")

		assert.Error(t, err)
		assert.Nil(t, record)
	})

	t.Run("allows empty user owner", func(t *testing.T) {
		record, err := NewRecord(1, 2, "text", TypeNameUpdate, doc, "")

		require.NoError(t, err)
		assert.Empty(t, record.UserOwner)
	})
}

func TestRecordSetters(t *testing.T) {
	newRecord := func(t *testing.T) *Record {
		record, err := NewRecord(1, 2, "text", TypeNameCreate, DocumentRef{Type: DocumentTypeCustomers, ID: 1}, "alice")
		require.NoError(t, err)
		return record
	}

	t.Run("sets and reads tags", func(t *testing.T) {
		record := newRecord(t)

		record.SetTags("vip,followup")

		assert.Equal(t, []byte("vip,followup"), record.Tags)
		assert.Equal(t, "vip,followup", record.TagsString())
	})

	t.Run("clears tags with empty string", func(t *testing.T) {
		record := newRecord(t)
		record.SetTags("vip")

		record.SetTags("")

		assert.Nil(t, record.Tags)
		assert.Empty(t, record.TagsString())
	})

	t.Run("updates status snapshot", func(t *testing.T) {
		record := newRecord(t)

		err := record.SetStatusSnapshot(9)

		require.NoError(t, err)
		assert.Equal(t, int64(9), record.StatusID)
	})

	t.Run("rejects non-positive status snapshot", func(t *testing.T) {
		record := newRecord(t)

		err := record.SetStatusSnapshot(0)

		assert.Error(t, err)
		assert.Equal(t, int64(2), record.StatusID)
	})

	t.Run("updates type name", func(t *testing.T) {
		record := newRecord(t)

		err := record.SetTypeName(TypeNameDelete)

		require.NoError(t, err)
		assert.Equal(t, TypeNameDelete, record.TypeName)
	})

	t.Run("rejects empty type name", func(t *testing.T) {
		record := newRecord(t)

		err := record.SetTypeName("")

		assert.Error(t, err)
		assert.Equal(t, TypeNameCreate, record.TypeName)
	})

	t.Run("updates user owner", func(t *testing.T) {
		record := newRecord(t)

		record.SetUserOwner("bob")

		assert.Equal(t, "bob", record.UserOwner)
	})
}

func TestNewActivityType(t *testing.T) {
	t.Run("creates activity type successfully", func(t *testing.T) {
		activityType, err := NewActivityType("Create", 0x4caf50)

		require.NoError(t, err)
		assert.Equal(t, "Create", activityType.TypeName)
		assert.Equal(t, 0x4caf50, activityType.Color)
	})

	t.Run("trims whitespace around the name", func(t *testing.T) {
		activityType, err := NewActivityType("  Update  ", 1)

		require.NoError(t, err)
		assert.Equal(t, "Update", activityType.TypeName)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		activityType, err := NewActivityType("   ", 1)

		assert.Error(t, err)
		assert.Nil(t, activityType)
	})

	t.Run("fails with negative color", func(t *testing.T) {
		activityType, err := NewActivityType("Create", -1)

		assert.Error(t, err)
		assert.Nil(t, activityType)
	})

	t.Run("rename and recolor", func(t *testing.T) {
		activityType, err := NewActivityType("Create", 1)
		require.NoError(t, err)

		require.NoError(t, activityType.Rename("Convert"))
		require.NoError(t, activityType.SetColor(5))

		assert.Equal(t, "Convert", activityType.TypeName)
		assert.Equal(t, 5, activityType.Color)

		assert.Error(t, activityType.Rename(""))
		assert.Error(t, activityType.SetColor(-2))
	})
}
