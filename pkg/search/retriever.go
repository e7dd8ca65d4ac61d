package search

// Retriever issues top-k queries against the similarity index pair: the
// combined image+text space and the text-only space. Each index answers
// independently.
type Retriever struct {
	combIndex *FlatIndex
	textIndex *FlatIndex
}

func NewRetriever(combIndex, textIndex *FlatIndex) *Retriever {
	return &Retriever{
		combIndex: combIndex,
		textIndex: textIndex,
	}
}

// Retrieve returns (Df, If) from the combined index and (Dt, It) from the
// text index for the two query embeddings.
func (r *Retriever) Retrieve(ce, te []float32, k int) (df []float32, fi []int, dt []float32, ti []int, err error) {
	df, fi, err = r.combIndex.Search(ce, k)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	dt, ti, err = r.textIndex.Search(te, k)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return df, fi, dt, ti, nil
}
