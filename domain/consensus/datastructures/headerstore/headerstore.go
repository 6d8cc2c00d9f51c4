package headerstore

import (
	"bytes"
	"encoding/binary"
	"sync"

	"github.com/kaspanet/hybridgate/domain/consensus/model"
	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
	"github.com/kaspanet/hybridgate/domain/consensus/ruleerrors"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/chainview"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/hybridgate/domain/consensus/utils/serialization"
	"github.com/kaspanet/hybridgate/infrastructure/db/database"
	"github.com/pkg/errors"
)

var headersBucket = database.MakeBucket([]byte("headers"))
var tipHeightKey = database.MakeBucket().Key([]byte("tip-height"))

// headerStore represents a store of the headers of a single chain
type headerStore struct {
	db database.Database

	lock sync.Mutex
	tip  *externalapi.DomainBlockHeader
}

// New instantiates a new HeaderStore over db
func New(db database.Database) (model.HeaderStore, error) {
	hs := &headerStore{db: db}
	err := hs.loadTip()
	if err != nil {
		return nil, err
	}
	return hs, nil
}

func (hs *headerStore) loadTip() error {
	tipHeight, ok, err := hs.TipHeight()
	if err != nil || !ok {
		return err
	}
	tip, err := hs.Get(tipHeight)
	if err != nil {
		return errors.Wrapf(err, "failed to load the tip at height %d", tipHeight)
	}
	hs.tip = tip
	log.Debugf("Loaded header store with tip at height %d", tipHeight)
	return nil
}

// Put appends header to the stored chain. The first header may be at any
// height, every other header must build on the stored tip.
func (hs *headerStore) Put(header *externalapi.DomainBlockHeader) error {
	hs.lock.Lock()
	defer hs.lock.Unlock()

	if hs.tip != nil {
		if header.Height != hs.tip.Height+1 {
			return errors.Wrapf(ruleerrors.ErrInvalidAncestor, "header at height %d doesn't extend the "+
				"stored tip at height %d", header.Height, hs.tip.Height)
		}
		tipHash := consensushashing.HeaderHash(hs.tip)
		if header.PrevBlockHash != *tipHash {
			return errors.Wrapf(ruleerrors.ErrInvalidAncestor, "header builds on %s but the stored tip "+
				"is %s", header.PrevBlockHash, tipHash)
		}
	}

	headerBytes, err := serializeHeader(header)
	if err != nil {
		return err
	}

	dbTx, err := hs.db.Begin()
	if err != nil {
		return err
	}
	defer dbTx.RollbackUnlessClosed()

	err = dbTx.Put(hs.headerKey(header.Height), headerBytes)
	if err != nil {
		return err
	}
	err = dbTx.Put(tipHeightKey, serializeHeight(header.Height))
	if err != nil {
		return err
	}
	err = dbTx.Commit()
	if err != nil {
		return err
	}

	hs.tip = header.Clone()
	log.Debugf("Stored header %s at height %d", consensushashing.HeaderHash(header), header.Height)
	return nil
}

// Get returns the header stored at height, or database.ErrNotFound
func (hs *headerStore) Get(height uint64) (*externalapi.DomainBlockHeader, error) {
	headerBytes, err := hs.db.Get(hs.headerKey(height))
	if err != nil {
		return nil, err
	}
	return deserializeHeader(headerBytes)
}

// TipHeight returns the height of the stored tip, or false if the store is
// empty
func (hs *headerStore) TipHeight() (uint64, bool, error) {
	heightBytes, err := hs.db.Get(tipHeightKey)
	if database.IsNotFoundError(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	height, err := deserializeHeight(heightBytes)
	if err != nil {
		return 0, false, err
	}
	return height, true, nil
}

// Snapshot returns a view over every stored header. Headers stored after the
// call are not part of the view.
func (hs *headerStore) Snapshot() (model.ChainView, error) {
	hs.lock.Lock()
	defer hs.lock.Unlock()

	cursor, err := hs.db.Cursor(headersBucket)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	var headers []*externalapi.DomainBlockHeader
	for ok := cursor.First(); ok; ok = cursor.Next() {
		headerBytes, err := cursor.Value()
		if err != nil {
			return nil, err
		}
		header, err := deserializeHeader(headerBytes)
		if err != nil {
			return nil, err
		}
		headers = append(headers, header)
	}

	view, err := chainview.New(headers)
	if err != nil {
		return nil, errors.Wrap(err, "the stored headers don't form a chain")
	}
	return view, nil
}

func (hs *headerStore) headerKey(height uint64) *database.Key {
	return headersBucket.Key(serializeHeight(height))
}

// serializeHeight encodes height big endian so that keys sort by height
func serializeHeight(height uint64) []byte {
	var heightBytes [8]byte
	binary.BigEndian.PutUint64(heightBytes[:], height)
	return heightBytes[:]
}

func deserializeHeight(heightBytes []byte) (uint64, error) {
	if len(heightBytes) != 8 {
		return 0, errors.Errorf("invalid height length %d", len(heightBytes))
	}
	return binary.BigEndian.Uint64(heightBytes), nil
}

func serializeHeader(header *externalapi.DomainBlockHeader) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := serialization.SerializeHeader(buf, header, true)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deserializeHeader(headerBytes []byte) (*externalapi.DomainBlockHeader, error) {
	reader := bytes.NewReader(headerBytes)
	header, err := serialization.DeserializeHeader(reader)
	if err != nil {
		return nil, err
	}
	if reader.Len() != 0 {
		return nil, errors.Errorf("%d trailing bytes after the stored header", reader.Len())
	}
	return header, nil
}
