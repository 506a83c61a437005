package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// NewSSMClient builds a Parameter Store client from the default AWS credential chain
func NewSSMClient(ctx context.Context) (*ssm.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

// LoadSSM copies every parameter stored under prefix into config, keyed by
// the name relative to the prefix (/portfolio/prod/DB_PASSWORD -> DB_PASSWORD).
// Keys already present in config are left alone so the environment always wins.
func LoadSSM(ctx context.Context, client ssm.GetParametersByPathAPIClient, prefix string, config map[string]string) (int, error) {
	root := strings.TrimSuffix(prefix, "/") + "/"
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(strings.TrimSuffix(prefix, "/")),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	})

	loaded := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return loaded, fmt.Errorf("loading parameters under %s: %w", prefix, err)
		}
		for _, p := range page.Parameters {
			key := strings.TrimPrefix(aws.ToString(p.Name), root)
			if key == "" {
				continue
			}
			if existing, ok := config[key]; ok && existing != "" {
				log.Debug().Str("key", key).Msg("environment overrides ssm parameter")
				continue
			}
			config[key] = aws.ToString(p.Value)
			loaded++
		}
	}
	return loaded, nil
}
