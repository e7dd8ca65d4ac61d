// FILE: pkg/pipeline/orchestrator.go
// PURPOSE: Drives one conversational search turn end to end: intent and
// query understanding, retrieval, blending, precision reranking and the two
// filter passes, updating the session state in between.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"bytemart-search-be/pkg/catalog"
	"bytemart-search-be/pkg/fixedfilter"
	"bytemart-search-be/pkg/intent"
	"bytemart-search-be/pkg/prefs"
	"bytemart-search-be/pkg/query"
	"bytemart-search-be/pkg/rerank"
	"bytemart-search-be/pkg/search"
	"bytemart-search-be/pkg/specfilter"
	"bytemart-search-be/pkg/store"
	"bytemart-search-be/pkg/tags"
	"bytemart-search-be/pkg/utils"
)

// Default candidate set sizes: a wide retrieval pass narrowed by precision
// rerank. Deps can override both.
const (
	RetrieveK = 200
	RerankK   = 50
)

// TurnRequest is one user turn against a session.
type TurnRequest struct {
	UserID           string
	ModificationText string
	Reset            bool
	ImageRef         string
}

// TurnResult is the ranked outcome of one turn. Indices address the catalog
// snapshot; Passed is how many leading indices satisfied the hard filter
// (equal to len(Indices) when no hard filter ran).
type TurnResult struct {
	Indices []int
	Tags    []string
	Passed  int
}

// Orchestrator owns the per-turn control flow. Turns against one session are
// strictly sequential; the session mutex only guards against concurrent
// callers, never against the orchestrator's own parallel stages, which hand
// their results back before state is written.
type Orchestrator struct {
	snapshot   *catalog.Snapshot
	encoder    *search.QueryEncoder
	retriever  *search.Retriever
	blender    *search.BlendingReranker
	reranker   rerank.Reranker
	classifier *intent.Classifier
	describer  *intent.Describer
	decomposer *query.Decomposer
	merger     *query.Merger
	fixed      *fixedfilter.Filter
	numeric    *specfilter.Engine
	tagger     *tags.Extractor
	prefQuery  *prefs.Generator
	logger     *log.Logger

	retrieveK  int
	rerankK    int
	imgWeight  float64
	textWeight float64
}

type Deps struct {
	Snapshot   *catalog.Snapshot
	Encoder    *search.QueryEncoder
	Retriever  *search.Retriever
	Blender    *search.BlendingReranker
	Reranker   rerank.Reranker
	Classifier *intent.Classifier
	Describer  *intent.Describer
	Decomposer *query.Decomposer
	Merger     *query.Merger
	Fixed      *fixedfilter.Filter
	Numeric    *specfilter.Engine
	Tagger     *tags.Extractor
	PrefQuery  *prefs.Generator
	Logger     *log.Logger

	// Candidate widths and default blend weights. Zero values take the
	// package defaults.
	RetrieveK  int
	RerankK    int
	ImgWeight  float64
	TextWeight float64
}

func NewOrchestrator(d Deps) *Orchestrator {
	if d.RetrieveK <= 0 {
		d.RetrieveK = RetrieveK
	}
	if d.RerankK <= 0 {
		d.RerankK = RerankK
	}
	if d.ImgWeight <= 0 && d.TextWeight <= 0 {
		d.ImgWeight = store.DefaultImgWeight
		d.TextWeight = store.DefaultTextWeight
	}
	return &Orchestrator{
		snapshot:   d.Snapshot,
		encoder:    d.Encoder,
		retriever:  d.Retriever,
		blender:    d.Blender,
		reranker:   d.Reranker,
		classifier: d.Classifier,
		describer:  d.Describer,
		decomposer: d.Decomposer,
		merger:     d.Merger,
		fixed:      d.Fixed,
		numeric:    d.Numeric,
		tagger:     d.Tagger,
		prefQuery:  d.PrefQuery,
		logger:     d.Logger,
		retrieveK:  d.RetrieveK,
		rerankK:    d.RerankK,
		imgWeight:  d.ImgWeight,
		textWeight: d.TextWeight,
	}
}

// ProcessTurn runs one turn against sess. Component failures degrade to
// their documented fallbacks; only intent classification and query
// decomposition transport failures abort the turn.
func (o *Orchestrator) ProcessTurn(ctx context.Context, sess *store.Session, req TurnRequest) (TurnResult, error) {
	sess.Mu.Lock()
	defer sess.Mu.Unlock()

	modText := req.ModificationText
	imageRef := req.ImageRef

	// Numeric-clause splitting runs alongside the reset work; neither needs
	// the other's output.
	var clauses []string
	var g errgroup.Group
	g.Go(func() error {
		clauses = o.decomposer.SplitNumericClauses(ctx, modText)
		return nil
	})

	if req.Reset {
		sess.Reset()
		sess.ImgWeight, sess.TextWeight = o.imgWeight, o.textWeight

		cls, err := o.classifier.Classify(ctx, imageRef, modText)
		if err != nil {
			g.Wait()
			return TurnResult{}, err
		}

		seed := modText
		if cls.Intent == intent.SpaceImprovement {
			// Recommendations span several products; the image of the old
			// space would only anchor retrieval to it.
			imageRef = ""
			seed = cls.RecommendationsQuery
			sess.ImgWeight, sess.TextWeight = 0, 1
		}

		var desc intent.Description
		if imageRef != "" {
			desc, err = o.describer.FromImage(ctx, imageRef)
		} else {
			desc, err = o.describer.FromText(ctx, seed)
		}
		if err != nil {
			g.Wait()
			return TurnResult{}, err
		}
		sess.BackBone = desc.Backbone
		sess.CurrentText = desc.Detailed

		// A fresh conversation starts from what this user tends to buy.
		modText = o.prefQuery.Query(ctx, req.UserID, sess.BackBone)
	}
	if err := g.Wait(); err != nil {
		return TurnResult{}, err
	}

	// Qualitative decomposition and the conflict check are independent reads
	// of the same two texts.
	var dec query.Decomposition
	conflict := false
	if modText != "" {
		var dg errgroup.Group
		dg.Go(func() error {
			var err error
			dec, err = o.decomposer.Split(ctx, modText)
			return err
		})
		dg.Go(func() error {
			conflict = o.merger.CheckConflict(ctx, sess.CurrentText, modText)
			return nil
		})
		if err := dg.Wait(); err != nil {
			return TurnResult{}, err
		}
	}

	if dec.General != "" {
		sess.CurrentText = o.merger.Merge(ctx, sess.CurrentText, dec.General)
	}
	var spec fixedfilter.Spec
	if dec.Special != "" {
		spec = o.fixed.ParseSpec(ctx, dec.Special)
	}

	// A conflict shifts the embedding basis itself, so the previous
	// candidate set is stale and retrieval starts over.
	if conflict || req.Reset {
		if err := o.retrieve(ctx, sess, imageRef); err != nil {
			return TurnResult{}, err
		}
	}

	ranked := o.precisionRerank(ctx, sess.CurrentText, sess.RetrievedIdx)
	if len(ranked) == 0 {
		o.logger.Printf("WARN: empty candidate set after precision rerank for session %s", sess.ID)
		return TurnResult{Indices: []int{}}, nil
	}

	passed := len(ranked)
	if !spec.Empty() {
		ranked, passed = o.fixed.Apply(spec, ranked, o.snapshot.Items)
	}

	// Tag attachment only mutates snapshot metadata, so it can overlap the
	// numeric filter pass over the same candidates.
	var turnTags []string
	var fg errgroup.Group
	final := ranked
	fg.Go(func() error {
		turnTags = o.tagger.Extract(ctx, sess.CurrentText)
		for _, idx := range ranked {
			o.snapshot.AttachTags(idx, turnTags)
		}
		return nil
	})
	fg.Go(func() error {
		if len(clauses) > 0 {
			final = o.numeric.Rerank(ctx, clauses, ranked, o.snapshot.Descriptions(ranked))
		}
		return nil
	})
	fg.Wait()

	sess.LastQuery = sess.CurrentText

	return TurnResult{Indices: final, Tags: turnTags, Passed: passed}, nil
}

// retrieve runs the wide retrieval pass and stores the blended order on the
// session.
func (o *Orchestrator) retrieve(ctx context.Context, sess *store.Session, imageRef string) error {
	_, te, ce := o.encoder.Encode(ctx, imageRef, sess.BackBone, sess.ImgWeight, sess.TextWeight)
	df, fi, dt, _, err := o.retriever.Retrieve(ce, te, o.retrieveK)
	if err != nil {
		return fmt.Errorf("retrieval: %w", err)
	}
	sess.RetrievedIdx = o.blender.Rank(df, fi, dt, utils.Tokenize(sess.CurrentText))
	return nil
}

// precisionRerank orders candidates by cross-item relevance to the current
// text. A transport failure keeps the incoming order; an empty answer is a
// legitimate "no results".
func (o *Orchestrator) precisionRerank(ctx context.Context, currentText string, candidates []int) []int {
	if len(candidates) == 0 {
		return nil
	}
	docs := o.snapshot.Descriptions(candidates)
	positions, err := o.reranker.Rerank(ctx, currentText, docs, o.rerankK)
	if err != nil {
		o.logger.Printf("WARN: precision rerank failed, keeping blended order: %v", err)
		if len(candidates) > o.rerankK {
			return candidates[:o.rerankK]
		}
		return candidates
	}
	out := make([]int, 0, len(positions))
	for _, p := range positions {
		out = append(out, candidates[p])
	}
	return out
}
