package constant

const (
	// QuerySplitPrompt partitions a modification utterance into a "general"
	// (qualitative) part and a "special" (price/rating/rating count) part.
	// Output contract: JSON object {"general": string, "special": string},
	// both keys always present, either may be empty. The text itself must not
	// be rewritten, only split.
	QuerySplitPrompt = `Split the following product query into two parts without changing any wording.

"general": product type, color, material, brand, features.
"special": price, user rating, rating count, discount, availability constraints.

Return only JSON: {"general": "...", "special": "..."}. Use "" for a part with no content.

Example:
Query: "Blue denim jeans under 50 dollars with at least 500 reviews"
{"general": "Blue denim jeans", "special": "under 50 dollars with at least 500 reviews"}

Query: "%s"`

	// NumericClauseSplitPrompt extracts independent numeric-specification
	// clauses (watts, mAh, liters, ...). Price, rating, number of ratings and
	// discount are handled elsewhere and must be ignored here.
	// Output contract: JSON array of strings, [] when nothing qualifies.
	NumericClauseSplitPrompt = `Extract each independent numeric specification clause from the query as a JSON array of strings. Ignore price, rating, rating count and discount; those are not numeric specifications here. Ignore text with no numeric comparison.

Example:
Query: "greater than 10 watts and less than 50 mAh" -> ["greater than 10 watts", "less than 50 mAh"]
Query: "show devices under 1000 rupees" -> []

Return only the JSON array.
Query: "%s"`

	// ConflictCheckPrompt decides if a modification contradicts the current
	// description (color change, removed feature, narrowed size).
	// Output contract: the word True or False.
	ConflictCheckPrompt = `Current product description:
"%s"
Customer modification:
"%s"

Does the modification contradict a feature already in the current description (different color, "no X" for a present feature, narrower size set)? Answer with exactly True or False.`

	// MergeDescriptionPrompt folds a qualitative modification into the
	// running product description.
	// Output contract: the merged description between triple backticks.
	MergeDescriptionPrompt = `Merge the customer request into the product description using these rules:
- New feature: append it.
- "no X": keep the other features and include "no X" literally.
- Feature marked optional or not needed: remove that feature entirely.
- Changed feature (e.g. new color): replace the old value, even if the old value appears multiple times.

Example: current "Laptop with touchscreen and backlit keyboard", request "No touchscreen" -> "Laptop with no touchscreen and backlit keyboard"

Current:
"%s"
Request:
"%s"

Return only the merged description between triple backticks.`

	// FixedFilterPrompt parses price/rating/rating-count constraints into
	// inclusive ranges.
	// Output contract: JSON {"price": [min,max]|null, "rating": [min,max]|null,
	// "rating_count": [min,max]|null}; an open bound is null inside the pair.
	FixedFilterPrompt = `Extract price, rating and rating count constraints from the text as JSON:
{"price": [min, max] or null, "rating": [min, max] or null, "rating_count": [min, max] or null}
Use null for an absent filter and null inside a pair for an open bound. Ratings cap at 5.

Example: "rating of at least 3.5" -> {"price": null, "rating": [3.5, 5], "rating_count": null}

Return only the JSON.
Text: "%s"`

	// NumericPredicatePrompt parses one numeric clause into a structured
	// predicate.
	// Output contract: JSON {"feature": string, "operator": "="|">"|"<"|"between",
	// "value": number | [number, number]}.
	NumericPredicatePrompt = `Parse the numeric filter into JSON with keys feature, operator, value.
Operators: "=", ">", "<", "between" (value is then [low, high]).
Feature names are snake_case with the unit, e.g. power_watts, battery_mah, capacity_liters.

Example: "between 20 and 50 watts" -> {"feature": "power_watts", "operator": "between", "value": [20, 50]}

Return only the JSON.
Query: "%s"`

	// AttributeExtractionPrompt pulls one named numeric feature out of a batch
	// of product descriptions.
	// Output contract: JSON array aligned with the input order, each element
	// {"value": number|null}.
	AttributeExtractionPrompt = `For each product description below, extract the numeric value of '%s'. Return a JSON array in the same order, each element {"value": <number or null>}. Use null when the feature is not mentioned.

Descriptions:
%s`

	// IntentPrompt classifies a query image (plus optional text) into one of
	// two intents.
	// Output contract: JSON {"intent": "similar_product" |
	// "space_improvement_or_replacement", "recommendations_query": string};
	// the query is present only for the second intent.
	IntentPrompt = `Classify the user's intent from the image%s.
- "similar_product": the image shows a single product, even a damaged one.
- "space_improvement_or_replacement": the image shows multiple products, or only a sub-part of one product is damaged. Then also produce "recommendations_query": one string listing several products to consider, e.g. "modern floor lamp, LED ceiling light, minimalist bookshelf".

Return only JSON: {"intent": "...", "recommendations_query": "..."}.`

	// IntentTextPrompt is the image-free variant for text-only openings.
	// Output contract: same JSON as IntentPrompt.
	IntentTextPrompt = `Classify the user's intent from the query text: "%s".
- "similar_product": the query describes one product to find.
- "space_improvement_or_replacement": the query describes a room or space to improve, or asks for several products at once. Then also produce "recommendations_query": one string listing several products to consider, e.g. "modern floor lamp, LED ceiling light, minimalist bookshelf".

Return only JSON: {"intent": "...", "recommendations_query": "..."}.`

	// TextSplitPrompt derives backbone and detailed descriptions from a text
	// query.
	// Output contract: JSON {"backbone": string, "detailed_description": string}.
	TextSplitPrompt = `From the product query below produce JSON with:
"backbone": the generic product type(s) only, no brand or color (e.g. "hiking boots" or "lamp, sofa, AC"),
"detailed_description": the full query restated as a concise product description.

Return only the JSON.
Query: "%s"`

	// ImageDescriptionPrompt derives both descriptions from a product image.
	// Output contract: JSON {"backbone": string, "detailed_description": string},
	// backbone free of brand and color.
	ImageDescriptionPrompt = `Describe the product in the image as JSON with:
"backbone": generic product type and category only, no brand or color,
"detailed_description": full description including brand, color, category and visible features.

Return only the JSON.`

	// TagExtractionPrompt produces e-commerce filter tags from a description.
	// Output contract: a comma-separated list, nothing else.
	TagExtractionPrompt = `Extract e-commerce filter tags (features, attributes, brand, color, material) from the text. Return only a comma-separated list.

Text: %s`

	// PreferenceQueryPrompt condenses the activity history into one search
	// query for the given product type.
	// Output contract: a single-line query string, nothing else.
	PreferenceQueryPrompt = `User activity history:
%s

Formulate ONE concise search query for a new '%s' reflecting the user's preferred brands, colors and price range from the history. Output only the query string, no explanation.`
)
