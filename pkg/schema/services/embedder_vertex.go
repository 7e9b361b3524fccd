package services

import (
	"context"
	"fmt"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/verbum-domini-api/pkg/schema/config"
)

const (
	vertexBatchLimit = 250
)

// VertexEmbedder implements Embedder using Google Cloud Vertex AI
type VertexEmbedder struct {
	client     *aiplatform.PredictionClient
	endpoint   string
	parameters *structpb.Value
}

// NewVertexEmbedder creates a new Vertex AI embedder
func NewVertexEmbedder(ctx context.Context, cfg *config.Config) (*VertexEmbedder, error) {
	if cfg.GCPProjectID == "" {
		return nil, fmt.Errorf("GCP_PROJECT_ID is required for Vertex AI embeddings")
	}

	clientEndpoint := fmt.Sprintf("%s-aiplatform.googleapis.com:443", cfg.GCPLocation)
	client, err := aiplatform.NewPredictionClient(ctx, option.WithEndpoint(clientEndpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	endpoint := fmt.Sprintf("projects/%s/locations/%s/publishers/google/models/%s",
		cfg.GCPProjectID, cfg.GCPLocation, cfg.VertexModel)

	// Dimensions must match the verse_embeddings column
	parameters, err := structpb.NewValue(map[string]interface{}{
		"outputDimensionality": cfg.EmbeddingDimensions,
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to build prediction parameters: %w", err)
	}

	return &VertexEmbedder{
		client:     client,
		endpoint:   endpoint,
		parameters: parameters,
	}, nil
}

// Close closes the Vertex AI client
func (e *VertexEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// Embed generates an embedding for a single text
func (e *VertexEmbedder) Embed(ctx context.Context, text string, taskType TaskType) ([]float64, error) {
	embeddings, err := e.EmbedBatch(ctx, []string{text}, taskType)
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}
	return embeddings[0], nil
}

// EmbedBatch generates embeddings for multiple texts, splitting requests at the Vertex batch limit
func (e *VertexEmbedder) EmbedBatch(ctx context.Context, texts []string, taskType TaskType) ([][]float64, error) {
	allEmbeddings := make([][]float64, 0, len(texts))
	for i := 0; i < len(texts); i += vertexBatchLimit {
		end := min(i+vertexBatchLimit, len(texts))
		batch, err := e.predict(ctx, texts[i:end], taskType)
		if err != nil {
			return nil, err
		}
		allEmbeddings = append(allEmbeddings, batch...)
	}
	return allEmbeddings, nil
}

func (e *VertexEmbedder) predict(ctx context.Context, texts []string, taskType TaskType) ([][]float64, error) {
	instances, err := buildInstances(texts, taskType)
	if err != nil {
		return nil, err
	}

	resp, err := e.client.Predict(ctx, &aiplatformpb.PredictRequest{
		Endpoint:   e.endpoint,
		Instances:  instances,
		Parameters: e.parameters,
	})
	if err != nil {
		return nil, fmt.Errorf("vertex AI prediction failed: %w", err)
	}

	if len(resp.Predictions) != len(texts) {
		return nil, fmt.Errorf("vertex AI returned %d predictions for %d texts", len(resp.Predictions), len(texts))
	}
	return parsePredictions(resp.Predictions)
}

func buildInstances(texts []string, taskType TaskType) ([]*structpb.Value, error) {
	instances := make([]*structpb.Value, len(texts))
	for i, text := range texts {
		instance, err := structpb.NewStruct(map[string]interface{}{
			"content":   text,
			"task_type": string(taskType),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create instance: %w", err)
		}
		instances[i] = structpb.NewStructValue(instance)
	}
	return instances, nil
}

// parsePredictions reads predictions[i].embeddings.values
func parsePredictions(predictions []*structpb.Value) ([][]float64, error) {
	embeddings := make([][]float64, len(predictions))
	for i, prediction := range predictions {
		predStruct := prediction.GetStructValue()
		if predStruct == nil {
			return nil, fmt.Errorf("unexpected prediction format at index %d", i)
		}

		embStruct := predStruct.GetFields()["embeddings"].GetStructValue()
		if embStruct == nil {
			return nil, fmt.Errorf("no embeddings field in prediction at index %d", i)
		}

		valuesList := embStruct.GetFields()["values"].GetListValue()
		if valuesList == nil {
			return nil, fmt.Errorf("no values field in embeddings at index %d", i)
		}

		embedding := make([]float64, len(valuesList.Values))
		for j, v := range valuesList.Values {
			embedding[j] = v.GetNumberValue()
		}
		embeddings[i] = embedding
	}
	return embeddings, nil
}
