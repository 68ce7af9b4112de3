package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// EmbeddingDimensions matches the default Gemini embedding model.
const EmbeddingDimensions uint64 = 768

// VectorStore keeps CV passage embeddings keyed by candidate.
type VectorStore interface {
	InitCollection(ctx context.Context) error
	UpsertPassages(ctx context.Context, candidateID uint, passages []string, embeddings [][]float32) error
	Search(ctx context.Context, vector []float32, limit int) ([]PassageHit, error)
	DeleteCandidate(ctx context.Context, candidateID uint) error
}

type PassageHit struct {
	CandidateID uint
	Score       float32
	Text        string
}

type qdrantService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

// NewQdrantService connects over gRPC. The port defaults to 6334 when the URL
// does not carry one.
func NewQdrantService(urlStr, apiKey, collectionName string, vectorSize uint64) (VectorStore, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   parsed.Hostname(),
		Port:   port,
		APIKey: apiKey,
		UseTLS: parsed.Scheme == "https",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     vectorSize,
	}, nil
}

func (q *qdrantService) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Printf("✅ Qdrant collection '%s' already exists", q.collectionName)
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created", q.collectionName)
	return nil
}

// UpsertPassages writes one point per passage. Point IDs are derived from the
// candidate and passage index so re-indexing overwrites in place.
func (q *qdrantService) UpsertPassages(ctx context.Context, candidateID uint, passages []string, embeddings [][]float32) error {
	if len(passages) != len(embeddings) {
		return fmt.Errorf("got %d passages but %d embeddings", len(passages), len(embeddings))
	}
	if len(passages) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, len(passages))
	for i, text := range passages {
		pointID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("candidate-%d-passage-%d", candidateID, i)))
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(pointID.String()),
			Vectors: qdrant.NewVectors(embeddings[i]...),
			Payload: qdrant.NewValueMap(map[string]any{
				"candidate_id": int64(candidateID),
				"passage":      int64(i),
				"text":         text,
			}),
		}
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	return nil
}

func (q *qdrantService) Search(ctx context.Context, vector []float32, limit int) ([]PassageHit, error) {
	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	hits := make([]PassageHit, 0, len(points))
	for _, point := range points {
		hit := PassageHit{Score: point.Score}
		if v, ok := point.Payload["candidate_id"]; ok {
			hit.CandidateID = uint(v.GetIntegerValue())
		}
		if v, ok := point.Payload["text"]; ok {
			hit.Text = v.GetStringValue()
		}
		hits = append(hits, hit)
	}

	return hits, nil
}

func (q *qdrantService) DeleteCandidate(ctx context.Context, candidateID uint) error {
	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: &qdrant.Filter{
					Must: []*qdrant.Condition{
						qdrant.NewMatchInt("candidate_id", int64(candidateID)),
					},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete candidate passages: %w", err)
	}

	return nil
}
