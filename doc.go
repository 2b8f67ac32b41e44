// Package invidx is an embeddable inverted-index engine.
//
// Given a corpus of identified text documents it builds a mapping from
// normalized word to the documents containing that word with per-document
// frequency, persists that mapping in a compact binary form, reloads it
// without re-parsing the corpus, and answers conjunctive multi-word queries
// ranked by summed term frequency.
//
// The root package is a thin facade over the focused subpackages: corpus
// (dataset loading), tokenizer (normalization), index (postings builder and
// the immutable index), codec (wire formats), search (query evaluation) and
// blobstore (where persisted indexes live).
//
//	docs, _ := corpus.LoadFile("dataset.tsv")
//	idx, _ := invidx.BuildIndex(ctx, docs)
//
//	store, _ := blobstore.NewLocalStore("./data")
//	_ = invidx.SaveIndex(ctx, store, "corpus.idx", idx)
//
//	idx, _ = invidx.LoadIndex(ctx, store, "corpus.idx")
//	ids, _ := invidx.Query(idx, []string{"cat", "dog"}, 10)
package invidx
