// Package vertex searches verse embeddings held in a Vertex AI Vector Search
// index. Datapoint ids are verse ids; each datapoint carries a "translation"
// restrict so queries can be limited to one translation.
package vertex

import (
	"context"
	"fmt"
	"sort"
	"strings"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	aiplatformpb "cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"github.com/jmoiron/sqlx"
	"google.golang.org/api/option"

	"github.com/verbum-domini-api/internal/models"
	"github.com/verbum-domini-api/internal/repository"
)

var _ repository.VectorSearchRepository = (*VectorSearchRepository)(nil)

// TranslationNamespace is the restrict namespace holding the translation abbreviation
const TranslationNamespace = "translation"

// Config locates the deployed index. PublicEndpointDomain, when set, is
// dialed instead of the regional API host.
type Config struct {
	ProjectID            string
	Location             string
	IndexEndpointID      string
	DeployedIndexID      string
	PublicEndpointDomain string
}

func (c Config) validate() error {
	var missing []string
	for name, v := range map[string]string{
		"project":        c.ProjectID,
		"location":       c.Location,
		"index endpoint": c.IndexEndpointID,
		"deployed index": c.DeployedIndexID,
	} {
		if v == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("vertex vector search: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c Config) address() string {
	if c.PublicEndpointDomain != "" {
		return c.PublicEndpointDomain + ":443"
	}
	return c.Location + "-aiplatform.googleapis.com:443"
}

func (c Config) indexEndpoint() string {
	return fmt.Sprintf("projects/%s/locations/%s/indexEndpoints/%s", c.ProjectID, c.Location, c.IndexEndpointID)
}

// VectorSearchRepository queries the index and resolves neighbor ids to verses in db
type VectorSearchRepository struct {
	config      Config
	matchClient *aiplatform.MatchClient
	db          *sqlx.DB
}

// NewVectorSearchRepository dials the match service for config
func NewVectorSearchRepository(ctx context.Context, config Config, db *sqlx.DB) (*VectorSearchRepository, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	matchClient, err := aiplatform.NewMatchClient(ctx, option.WithEndpoint(config.address()))
	if err != nil {
		return nil, fmt.Errorf("create match client: %w", err)
	}
	return &VectorSearchRepository{config: config, matchClient: matchClient, db: db}, nil
}

func (r *VectorSearchRepository) Close() error {
	if r.matchClient == nil {
		return nil
	}
	return r.matchClient.Close()
}

// SearchVersesByEmbedding returns the topK nearest verses, limited to
// translation when it is set
func (r *VectorSearchRepository) SearchVersesByEmbedding(ctx context.Context, embedding []float64, translation string, topK int) ([]models.ScoredVerse, error) {
	resp, err := r.matchClient.FindNeighbors(ctx, buildFindNeighborsRequest(r.config, embedding, translation, topK))
	if err != nil {
		return nil, fmt.Errorf("find neighbors: %w", err)
	}

	if len(resp.NearestNeighbors) == 0 || len(resp.NearestNeighbors[0].Neighbors) == 0 {
		return []models.ScoredVerse{}, nil
	}

	neighbors := resp.NearestNeighbors[0].Neighbors
	verseIDs := make([]string, len(neighbors))
	scoreMap := make(map[string]float64, len(neighbors))
	for i, neighbor := range neighbors {
		verseID := neighbor.GetDatapoint().GetDatapointId()
		verseIDs[i] = verseID
		// Cosine distance; similarity = 1 - distance
		scoreMap[verseID] = 1 - neighbor.GetDistance()
	}

	results, err := lookupVerses(ctx, r.db, verseIDs, scoreMap)
	if err != nil {
		return nil, fmt.Errorf("lookup verses: %w", err)
	}
	return results, nil
}

func buildFindNeighborsRequest(config Config, embedding []float64, translation string, topK int) *aiplatformpb.FindNeighborsRequest {
	featureVector := make([]float32, len(embedding))
	for i, v := range embedding {
		featureVector[i] = float32(v)
	}

	datapoint := &aiplatformpb.IndexDatapoint{FeatureVector: featureVector}
	if translation != "" {
		datapoint.Restricts = []*aiplatformpb.IndexDatapoint_Restriction{
			{Namespace: TranslationNamespace, AllowList: []string{translation}},
		}
	}

	return &aiplatformpb.FindNeighborsRequest{
		IndexEndpoint:   config.indexEndpoint(),
		DeployedIndexId: config.DeployedIndexID,
		Queries: []*aiplatformpb.FindNeighborsRequest_Query{
			{
				Datapoint:     datapoint,
				NeighborCount: int32(topK),
			},
		},
	}
}

// lookupVerses retrieves verse details given ids from the index, keeping the index's order.
// Ids no longer present in the database are dropped.
func lookupVerses(ctx context.Context, db *sqlx.DB, verseIDs []string, scoreMap map[string]float64) ([]models.ScoredVerse, error) {
	if len(verseIDs) == 0 {
		return []models.ScoredVerse{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT v.id AS verse_id, t.abbreviation AS translation, v.book_name AS book,
		       v.chapter_number AS chapter, v.number AS verse, v.text
		FROM verses v
		JOIN translations t ON t.id = v.translation_id
		WHERE v.id IN (?)
	`, verseIDs)
	if err != nil {
		return nil, fmt.Errorf("build IN query: %w", err)
	}

	var rows []models.ScoredVerse
	if err := db.SelectContext(ctx, &rows, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("query verses: %w", err)
	}

	verseMap := make(map[string]models.ScoredVerse, len(rows))
	for _, v := range rows {
		v.Score = scoreMap[v.VerseID]
		verseMap[v.VerseID] = v
	}

	results := make([]models.ScoredVerse, 0, len(verseIDs))
	for _, id := range verseIDs {
		if v, ok := verseMap[id]; ok {
			results = append(results, v)
		}
	}
	return results, nil
}
