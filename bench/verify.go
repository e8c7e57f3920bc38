// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"math/rand"

	"github.com/bitmark-inc/baltree/fault"
	"github.com/bitmark-inc/baltree/tree"
)

// Verification - summary of a random insert/delete soak
type Verification struct {
	Discipline string `json:"discipline" yaml:"discipline"`
	Operations int    `json:"operations" yaml:"operations"`
	Inserted   int    `json:"inserted" yaml:"inserted"`
	Duplicates int    `json:"duplicates" yaml:"duplicates"`
	Deleted    int    `json:"deleted" yaml:"deleted"`
	Missing    int    `json:"missing" yaml:"missing"`
	Count      int    `json:"count" yaml:"count"`
	Height     int    `json:"height" yaml:"height"`
}

// Verify - random inserts and deletes against a shadow set, the tree
// is fully checked after every operation
func (r *Runner) Verify(d tree.Discipline, operations int, seed int64) (*Verification, error) {
	if operations <= 0 {
		return nil, fmt.Errorf("%w: %d", fault.ErrVerificationOperations, operations)
	}
	idx, err := tree.New[int32](d)
	if nil != err {
		return nil, err
	}

	v := &Verification{
		Discipline: d.String(),
		Operations: operations,
	}
	random := rand.New(rand.NewSource(seed))
	keyRange := operations/2 + 1
	shadow := make(map[int32]struct{})

	for i := 0; i < operations; i += 1 {
		k := int32(random.Intn(keyRange))
		_, present := shadow[k]

		if 0 == random.Intn(2) {
			added := idx.Insert(k)
			if added == present {
				return v, fmt.Errorf("operation: %d  insert: %d  added: %t  already present: %t", i, k, added, present)
			}
			if added {
				v.Inserted += 1
			} else {
				v.Duplicates += 1
			}
			shadow[k] = struct{}{}
		} else {
			err := idx.Delete(k)
			switch {
			case present && nil == err:
				v.Deleted += 1
			case !present && fault.IsErrNotFound(err):
				v.Missing += 1
			default:
				return v, fmt.Errorf("operation: %d  delete: %d  present: %t  error: %v", i, k, present, err)
			}
			delete(shadow, k)
		}

		if err := idx.Check(); nil != err {
			r.log.Errorf("%s operation: %d  key: %d  check error: %s", d, i, k, err)
			return v, fmt.Errorf("operation: %d  key: %d: %w", i, k, err)
		}
		if idx.Count() != len(shadow) {
			return v, fmt.Errorf("%w: operation: %d  tree: %d  shadow: %d", fault.ErrCountMismatch, i, idx.Count(), len(shadow))
		}
	}

	v.Count = idx.Count()
	v.Height = idx.Height()
	r.log.Infof("%s verified: %d operations  inserted: %d  deleted: %d  final count: %d  height: %d",
		d, operations, v.Inserted, v.Deleted, v.Count, v.Height)
	return v, nil
}
