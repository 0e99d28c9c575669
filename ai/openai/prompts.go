package openai

const requirementsResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "skill_areas": {
      "type": "array",
      "items": {
        "type": "string",
        "pattern": "^[a-z0-9+#.]+( [a-z0-9+#.]+)*$"
      }
    },
    "seniority": {
      "type": "string"
    },
    "time_budget": {
      "type": "integer",
      "minimum": 0
    }
  },
  "required": ["skill_areas", "seniority", "time_budget"],
  "additionalProperties": false
}`

const requirementsPromptTemplate = `You are an expert hiring assessment advisor. Extract the structured hiring
requirements from the given query and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- skill_areas: lowercase skill or knowledge areas the query asks for ("java", "sql", "teamwork", "numerical reasoning").
- seniority: the target seniority level if stated ("junior", "mid", "senior", "manager"), otherwise "".
- time_budget: the maximum acceptable total assessment time in minutes if stated, otherwise 0.
- Include only requirements that are explicitly mentioned or clearly implied by the query. Do not hallucinate.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "Need a Java developer who can collaborate with business teams. Tests within 40 minutes."
Output:
{
  "skill_areas": ["java", "collaboration"],
  "seniority": "",
  "time_budget": 40
}

Example:
Input: "Looking for a senior data analyst with SQL skills"
Output:
{
  "skill_areas": ["sql", "data analysis"],
  "seniority": "senior",
  "time_budget": 0
}`

const rankingResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "ranking": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {
            "type": "integer",
            "minimum": 0
          },
          "score": {
            "type": "number",
            "minimum": 0,
            "maximum": 10
          }
        },
        "required": ["id", "score"],
        "additionalProperties": false
      }
    }
  },
  "required": ["ranking"],
  "additionalProperties": false
}`

const rankingPromptTemplate = `You are an expert in talent assessment and hiring. Given structured hiring
requirements and a list of candidate assessments, score every candidate by its relevance to the requirements
and return a ranked list as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- id refers to the numeric id of a candidate from the provided list. Use each id at most once.
- Score from 0 (irrelevant) to 10 (perfect match). Rate how well the assessment measures what the requirements ask for.
- Prefer assessments that fit the stated time budget when one is given.
- Order the ranking array from most relevant to least relevant.
- Include every candidate from the list. Do not invent ids that are not in the list.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`
