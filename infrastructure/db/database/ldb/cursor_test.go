package ldb

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"testing"

	"github.com/kaspanet/hybridgate/infrastructure/db/database"
)

func heightSuffix(height uint64) []byte {
	suffix := make([]byte, 8)
	binary.BigEndian.PutUint64(suffix, height)
	return suffix
}

// fillBucket writes the values "value<height>" under big-endian heights
// [0, count) in bucket, in reverse order so that the cursor has to sort them
func fillBucket(t *testing.T, testName string, ldb *LevelDB, bucket *database.Bucket, count uint64) {
	for height := count; height > 0; height-- {
		err := ldb.Put(bucket.Key(heightSuffix(height-1)), []byte(fmt.Sprintf("value%d", height-1)))
		if err != nil {
			t.Fatalf("%s: Put unexpectedly failed: %s", testName, err)
		}
	}
}

func checkCursorEntry(t *testing.T, testName string, cursor database.Cursor, bucket *database.Bucket,
	expectedHeight uint64) {

	key, err := cursor.Key()
	if err != nil {
		t.Fatalf("%s: Key unexpectedly failed: %s", testName, err)
	}
	if !bytes.Equal(key.Bytes(), bucket.Key(heightSuffix(expectedHeight)).Bytes()) {
		t.Fatalf("%s: cursor is at %x, want height %d", testName, key.Bytes(), expectedHeight)
	}
	if !bytes.Equal(key.Suffix(), heightSuffix(expectedHeight)) {
		t.Fatalf("%s: Key didn't trim the bucket path: suffix %x", testName, key.Suffix())
	}

	value, err := cursor.Value()
	if err != nil {
		t.Fatalf("%s: Value unexpectedly failed: %s", testName, err)
	}
	expectedValue := fmt.Sprintf("value%d", expectedHeight)
	if string(value) != expectedValue {
		t.Fatalf("%s: Value returned %s, want %s", testName, value, expectedValue)
	}
}

func TestCursorIteratesInKeyOrder(t *testing.T) {
	ldb, teardownFunc := prepareDatabaseForTest(t, "TestCursorIteratesInKeyOrder")
	defer teardownFunc()

	bucket := database.MakeBucket([]byte("headers"))
	fillBucket(t, "TestCursorIteratesInKeyOrder", ldb, bucket, 300)

	cursor, err := ldb.Cursor(bucket)
	if err != nil {
		t.Fatalf("TestCursorIteratesInKeyOrder: Cursor unexpectedly failed: %s", err)
	}
	defer cursor.Close()

	height := uint64(0)
	for ok := cursor.First(); ok; ok = cursor.Next() {
		checkCursorEntry(t, "TestCursorIteratesInKeyOrder", cursor, bucket, height)
		height++
	}
	if height != 300 {
		t.Fatalf("TestCursorIteratesInKeyOrder: iterated over %d entries, want 300", height)
	}

	// An exhausted cursor has neither a key nor a value
	_, err = cursor.Key()
	if !database.IsNotFoundError(err) {
		t.Fatalf("TestCursorIteratesInKeyOrder: Key of an exhausted cursor returned %v", err)
	}
	_, err = cursor.Value()
	if !database.IsNotFoundError(err) {
		t.Fatalf("TestCursorIteratesInKeyOrder: Value of an exhausted cursor returned %v", err)
	}
}

func TestCursorSeek(t *testing.T) {
	ldb, teardownFunc := prepareDatabaseForTest(t, "TestCursorSeek")
	defer teardownFunc()

	bucket := database.MakeBucket([]byte("headers"))
	fillBucket(t, "TestCursorSeek", ldb, bucket, 10)

	tests := []struct {
		name             string
		key              *database.Key
		expectedNotFound bool
		expectedHeight   uint64
	}{
		{name: "first", key: bucket.Key(heightSuffix(0)), expectedHeight: 0},
		{name: "middle", key: bucket.Key(heightSuffix(5)), expectedHeight: 5},
		{name: "last", key: bucket.Key(heightSuffix(9)), expectedHeight: 9},
		{name: "past the end", key: bucket.Key(heightSuffix(10)), expectedNotFound: true},
		{name: "prefix of a key", key: bucket.Key(heightSuffix(5)[:7]), expectedNotFound: true},
		{name: "other bucket", key: database.MakeBucket([]byte("other")).Key(heightSuffix(5)),
			expectedNotFound: true},
	}

	for _, test := range tests {
		func() {
			cursor, err := ldb.Cursor(bucket)
			if err != nil {
				t.Fatalf("TestCursorSeek: Cursor unexpectedly failed: %s", err)
			}
			defer cursor.Close()

			err = cursor.Seek(test.key)
			if test.expectedNotFound {
				if !database.IsNotFoundError(err) {
					t.Fatalf("TestCursorSeek: %s: expected ErrNotFound, got %v", test.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("TestCursorSeek: %s: Seek unexpectedly failed: %s", test.name, err)
			}
			checkCursorEntry(t, "TestCursorSeek: "+test.name, cursor, bucket, test.expectedHeight)

			// Iteration continues from the sought key
			if test.expectedHeight < 9 {
				if !cursor.Next() {
					t.Fatalf("TestCursorSeek: %s: Next after Seek returned false", test.name)
				}
				checkCursorEntry(t, "TestCursorSeek: "+test.name, cursor, bucket, test.expectedHeight+1)
			}
		}()
	}
}

func TestClosedCursor(t *testing.T) {
	ldb, teardownFunc := prepareDatabaseForTest(t, "TestClosedCursor")
	defer teardownFunc()

	bucket := database.MakeBucket([]byte("headers"))
	fillBucket(t, "TestClosedCursor", ldb, bucket, 3)

	tests := []struct {
		name          string
		function      func(cursor database.Cursor) error
		expectedPanic bool
	}{
		{
			name: "Seek",
			function: func(cursor database.Cursor) error {
				return cursor.Seek(bucket.Key(heightSuffix(0)))
			},
		},
		{
			name: "Key",
			function: func(cursor database.Cursor) error {
				_, err := cursor.Key()
				return err
			},
		},
		{
			name: "Value",
			function: func(cursor database.Cursor) error {
				_, err := cursor.Value()
				return err
			},
		},
		{
			name: "Close",
			function: func(cursor database.Cursor) error {
				return cursor.Close()
			},
		},
		{
			name: "First",
			function: func(cursor database.Cursor) error {
				cursor.First()
				return nil
			},
			expectedPanic: true,
		},
		{
			name: "Next",
			function: func(cursor database.Cursor) error {
				cursor.Next()
				return nil
			},
			expectedPanic: true,
		},
	}

	for _, test := range tests {
		cursor, err := ldb.Cursor(bucket)
		if err != nil {
			t.Fatalf("TestClosedCursor: Cursor unexpectedly failed: %s", err)
		}
		err = cursor.Close()
		if err != nil {
			t.Fatalf("TestClosedCursor: Close unexpectedly failed: %s", err)
		}

		var panicErr interface{}
		func() {
			defer func() { panicErr = recover() }()
			err = test.function(cursor)
		}()

		if test.expectedPanic {
			if panicErr == nil || !strings.Contains(fmt.Sprintf("%v", panicErr), "closed cursor") {
				t.Fatalf("TestClosedCursor: %s: expected a closed cursor panic, got %v", test.name, panicErr)
			}
			continue
		}
		if panicErr != nil {
			t.Fatalf("TestClosedCursor: %s: unexpected panic: %v", test.name, panicErr)
		}
		if err == nil || !strings.Contains(err.Error(), "closed cursor") {
			t.Fatalf("TestClosedCursor: %s: expected a closed cursor error, got %v", test.name, err)
		}
	}
}

func TestCursorStaysInBucket(t *testing.T) {
	ldb, teardownFunc := prepareDatabaseForTest(t, "TestCursorStaysInBucket")
	defer teardownFunc()

	bucket := database.MakeBucket([]byte("headers"))
	fillBucket(t, "TestCursorStaysInBucket", ldb, bucket, 4)
	fillBucket(t, "TestCursorStaysInBucket", ldb, database.MakeBucket([]byte("headers-tip")), 2)
	fillBucket(t, "TestCursorStaysInBucket", ldb, bucket.Bucket([]byte("sub")), 2)

	cursor, err := ldb.Cursor(bucket)
	if err != nil {
		t.Fatalf("TestCursorStaysInBucket: Cursor unexpectedly failed: %s", err)
	}
	defer cursor.Close()

	count := 0
	for ok := cursor.First(); ok; ok = cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			t.Fatalf("TestCursorStaysInBucket: Key unexpectedly failed: %s", err)
		}
		if !bytes.HasPrefix(key.Bytes(), bucket.Path()) {
			t.Fatalf("TestCursorStaysInBucket: cursor left its bucket at %s", key)
		}
		count++
	}
	// The sub-bucket lives under the bucket path, so a cursor sees it too
	if count != 6 {
		t.Fatalf("TestCursorStaysInBucket: expected 6 entries, got %d", count)
	}
}
