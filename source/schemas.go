package source

import "influencer-trust/ai"

func str(description string) *ai.Schema {
	return &ai.Schema{Type: ai.TypeString, Description: description}
}

func num(description string) *ai.Schema {
	return &ai.Schema{Type: ai.TypeNumber, Description: description}
}

func stat(description, valueDescription, detailDescription string) *ai.Schema {
	return &ai.Schema{
		Type:        ai.TypeObject,
		Description: description,
		Properties: map[string]*ai.Schema{
			"value":       str(valueDescription),
			"description": str(detailDescription),
		},
		Required: []string{"value", "description"},
	}
}

var leaderboardSchema = &ai.Schema{
	Type:        ai.TypeObject,
	Description: "Health Influencer Data",
	Properties: map[string]*ai.Schema{
		"active_influencers":          str("Active Health Influencers (Number of active influencers)"),
		"overall_verified_claims":     str("Verified claims (The number of confirmed articles, blogs, podcast transcripts, tweets and books by Health Influencers)"),
		"overall_average_trust_score": str("Average Trust Score (The percentage of trustworthiness articles, blogs, podcast transcripts, tweets, and books by Health Influencers)"),
		"influencers": {
			Type: ai.TypeArray,
			Items: &ai.Schema{
				Type: ai.TypeObject,
				Properties: map[string]*ai.Schema{
					"rank":      num("Overall Influencer ranking (Not based on category)"),
					"name":      str("Influencer name"),
					"image":     str("Influencer image"),
					"category":  str("Influencer category"),
					"trust":     num("Influencer trust score (The percentage of trustworthiness articles, blogs, podcast transcripts, tweets, and books by Health Influencers)"),
					"trend":     str("Influencer trend"),
					"followers": str("Influencer followers"),
					"claims":    num("Number of verified claims"),
				},
				Required: []string{"rank", "name", "image", "category", "trust", "trend", "followers", "claims"},
			},
		},
	},
	Required: []string{"active_influencers", "overall_verified_claims", "overall_average_trust_score", "influencers"},
}

var influencerSchema = &ai.Schema{
	Type:        ai.TypeObject,
	Description: "Health Influencer Details",
	Properties: map[string]*ai.Schema{
		"image": str("Influencer image"),
		"name":  str("Influencer name"),
		"categories": {
			Type:        ai.TypeArray,
			Description: "Influencer categories",
			Items:       &ai.Schema{Type: ai.TypeString},
		},
		"bio":     str("Influencer bio"),
		"trust":   stat("Influencer trust score", "Trust score value in percentage", "Trust score based on how many claims?"),
		"revenue": stat("Influencer yearly revenue", "Revenue value", "How the influencer monetizes their audience"),
		"products": {
			Type:        ai.TypeArray,
			Description: "Influencer's recommended products",
			Items:       str("A recommended product"),
		},
		"followers": stat("Influencer total followers", "Follower count", "Where the followers are"),
		"claims": {
			Type: ai.TypeArray,
			Items: &ai.Schema{
				Type: ai.TypeObject,
				Properties: map[string]*ai.Schema{
					"verified":        str("Verified, Questionable or Debunked?"),
					"createdAt":       str("Claim date"),
					"claim":           str("Claim text"),
					"claim_source":    str("Claim source url"),
					"trust":           num("Claim trust score in percentage"),
					"analysis":        str("AI analysis"),
					"research_source": str("Research source"),
					"category":        str("Claim category"),
				},
				Required: []string{"verified", "createdAt", "claim", "claim_source", "trust", "analysis", "research_source", "category"},
			},
		},
	},
	Required: []string{"image", "name", "categories", "bio", "trust", "revenue", "products", "followers", "claims"},
}
