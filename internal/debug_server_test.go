package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
)

func TestDefaultMapper(t *testing.T) {
	req := require.New(t)
	val, err := cbor.Marshal(map[string]string{"user_id": "alice"})
	req.NoError(err)

	row := DefaultMapper("team:00000000000000000003:member:alice", val)

	req.Equal("MEMBER", row.Type)
	req.Equal("3", row.Team)
	req.Equal("alice", row.Entity)
	req.Contains(row.Detail, "alice")

	row = DefaultMapper("item:00000000000000000042", val)
	req.Equal("ITEM", row.Type)
	req.Equal("42", row.Entity)

	row = DefaultMapper("unknown", []byte{0xff, 0xff})
	req.Equal("RAW", row.Type)
	req.Equal("Size: 2 bytes", row.Detail)
}

func TestInspectHandler_Lists_Prefix(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()
	val, err := cbor.Marshal("x")
	req.NoError(err)
	req.NoError(db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte("team:00000000000000000001:member:alice"), val); err != nil {
			return err
		}
		return txn.Set([]byte("checkin:00000000000000000001"), val)
	}))

	handler := InspectHandler(db, nil, func() map[string]any { return map[string]any{"open_connections": 2} })
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/debug/inspect", nil))

	req.Equal(http.StatusOK, recorder.Code)
	req.Contains(recorder.Body.String(), "member:alice")
	req.NotContains(recorder.Body.String(), "checkin:")
	req.Contains(recorder.Body.String(), "open_connections: 2")
}
