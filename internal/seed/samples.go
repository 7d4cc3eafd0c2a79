package seed

import "github.com/dikkadev/proompt-dbtools/pkg/types"

// samplePrompt is a hand-authored prompt. Its content shows off the
// placeholder and snippet reference syntax, including one reference to a
// snippet that does not exist.
type samplePrompt struct {
	title       string
	content     string
	promptType  types.PromptType
	useCase     string
	models      []string
	temperature float64
}

// sampleSnippet is a hand-authored snippet.
type sampleSnippet struct {
	title       string
	content     string
	description string
}

var predefinedPrompts = []samplePrompt{
	{
		title:       "Code Review Assistant",
		content:     "You are an expert code reviewer for {{language:Python}}. Please review the following code and provide constructive feedback on:\n\n1. Code quality and best practices\n2. Potential bugs or issues\n3. Performance improvements\n4. Security considerations\n5. Readability and maintainability\n\n@error_handling_pattern\n\nCode to review:\n```{{language}}\n{{code}}\n```\n\nFocus areas: {{focus_areas:general review}}",
		promptType:  types.PromptTypeSystem,
		useCase:     "code_review",
		models:      []string{"gpt-4", "claude-3", "gemini-pro"},
		temperature: 0.3,
	},
	{
		title:       "Technical Documentation Writer",
		content:     "You are a technical documentation specialist for {{project_name}}. Create clear, comprehensive documentation for:\n\n**Topic:** {{topic}}\n**Audience:** {{audience:developers}}\n**Format:** {{format:markdown}}\n\nInclude:\n- Overview and purpose\n- Prerequisites\n- Step-by-step instructions\n- Examples\n- Common troubleshooting\n- Best practices\n\n@api_response_format\n\nAdditional context: {{context}}",
		promptType:  types.PromptTypeSystem,
		useCase:     "documentation",
		models:      []string{"gpt-4", "claude-3"},
		temperature: 0.4,
	},
	{
		title:       "API Design Consultant",
		content:     "Design a RESTful API for {{domain}} with {{auth_type:JWT}} authentication.\n\nConsider:\n1. Resource modeling for {{resources}}\n2. HTTP methods and status codes\n3. Request/response formats\n4. Authentication and authorization\n5. Rate limiting ({{rate_limit:1000/hour}})\n6. Versioning strategy\n7. Error handling\n\n@input_validation\n@database_transaction\n\nProvide OpenAPI specification and implementation notes.\nTarget framework: {{framework:Express.js}}",
		promptType:  types.PromptTypeUser,
		useCase:     "api_design",
		models:      []string{"gpt-4", "claude-3", "gemini-pro"},
		temperature: 0.5,
	},
	{
		title:       "Database Schema Designer",
		content:     "Design a database schema for {{application_type}} using {{database:PostgreSQL}}.\n\nRequirements:\n- Expected users: {{user_count:10000}}\n- Data retention: {{retention:5 years}}\n- Performance target: {{performance:sub-100ms queries}}\n\nInclude:\n1. Entity relationship diagram\n2. Table definitions with constraints\n3. Indexes for performance\n4. Migration strategy\n5. Data integrity considerations\n\n@error_handling_pattern\n\nExplain your design decisions and trade-offs for {{specific_requirements}}.",
		promptType:  types.PromptTypeUser,
		useCase:     "database_design",
		models:      []string{"gpt-4", "claude-3"},
		temperature: 0.4,
	},
	{
		title:       "Security Audit Assistant",
		content:     "Perform a security audit of {{system_name}} ({{system_type:web application}}).\n\nScope: {{audit_scope:full application}}\nCompliance: {{compliance_requirements:GDPR, SOC2}}\n\nFocus on:\n1. Authentication and authorization flaws\n2. Input validation issues\n3. SQL injection vulnerabilities\n4. XSS and CSRF risks\n5. Data exposure concerns\n6. Configuration security\n\n@input_validation\n@missing_snippet_reference\n\nSystem/Code:\n{{target}}\n\nPriority areas: {{priority_areas:authentication, data handling}}",
		promptType:  types.PromptTypeSystem,
		useCase:     "security_audit",
		models:      []string{"gpt-4", "claude-3"},
		temperature: 0.2,
	},
}

// promptTemplates is the content pool for generated prompts.
var promptTemplates = []string{
	"Analyze {{data_source}} and provide insights about {{topic:general trends}}. Focus on {{metrics}} and include @api_response_format in your analysis.",
	"Create a {{document_type:report}} for {{audience:stakeholders}} covering {{subject}}. Use {{format:markdown}} and reference @input_validation patterns.",
	"Generate {{content_type}} for {{platform:web}} targeting {{user_segment:general users}}. Include {{features}} and apply @error_handling_pattern.",
	"Review {{code_type:JavaScript}} code for {{project_name}} focusing on {{review_aspects:performance, security}}. Apply @database_transaction principles.",
	"Design {{system_component}} for {{application:web app}} with {{requirements}} and {{constraints:budget friendly}}. Reference @missing_snippet for advanced patterns.",
	"Implement {{feature_name}} using {{technology:React}} with {{styling:CSS modules}}. Consider {{accessibility_requirements:WCAG 2.1}} and use @api_response_format.",
	"Test {{functionality}} in {{environment:staging}} with {{test_data}} and {{expected_results:positive outcomes}}. Include @input_validation checks.",
	"Deploy {{service_name}} to {{platform:AWS}} with {{configuration}} and {{monitoring:CloudWatch}}. Follow @error_handling_pattern for failures.",
	"Optimize {{performance_target}} for {{system_part}} using {{optimization_method:caching}} and {{tools:profiler}}. Apply @database_transaction optimizations.",
	"Document {{api_endpoint}} with {{parameters}} returning {{response_format}} for {{use_case:user management}}. Use @api_response_format structure.",
}

var (
	generatedUseCases = []string{"development", "testing", "documentation", "analysis", "creative", "research"}
	generatedModels   = []string{"gpt-4", "claude-3", "gemini-pro", "llama-2"}
)

// predefinedSnippets are the snippets the prompts above refer to by title.
var predefinedSnippets = []sampleSnippet{
	{
		title:       "error_handling_pattern",
		content:     "try {\n    // risky operation for {{operation_name:default operation}}\n    const result = await {{function_name}}({{params}});\n    return result;\n} catch (error) {\n    logger.error(\"{{error_message:Operation failed}}\", error);\n    throw new CustomError(\"{{user_message:Operation failed}}\", error);\n}",
		description: "Standard error handling pattern with logging and custom error wrapping",
	},
	{
		title:       "database_transaction",
		content:     "const transaction = await db.beginTransaction();\ntry {\n    await db.query(\"INSERT INTO {{table1:users}} ...\", {{params1}});\n    await db.query(\"INSERT INTO {{table2:profiles}} ...\", {{params2}});\n    await transaction.commit();\n    console.log(\"{{success_message:Transaction completed successfully}}\");\n} catch (error) {\n    await transaction.rollback();\n    logger.error(\"Transaction failed for {{context}}\", error);\n    throw error;\n}",
		description: "Database transaction pattern with rollback on error",
	},
	{
		title:       "api_response_format",
		content:     "{\n  \"success\": {{success:true}},\n  \"data\": {{data}},\n  \"message\": \"{{message:Operation completed successfully}}\",\n  \"timestamp\": \"{{timestamp}}\",\n  \"request_id\": \"{{request_id}}\",\n  \"metadata\": {\n    \"version\": \"{{api_version:v1}}\",\n    \"endpoint\": \"{{endpoint}}\"\n  }\n}",
		description: "Standard API response format with metadata and variables",
	},
	{
		title:       "input_validation",
		content:     "const schema = {\n  email: { type: \"string\", format: \"email\", required: {{email_required:true}} },\n  age: { type: \"number\", minimum: {{min_age:0}}, maximum: {{max_age:150}} },\n  name: { type: \"string\", minLength: 1, maxLength: {{max_name_length:100}} },\n  {{custom_field}}: { type: \"{{field_type:string}}\", required: {{field_required:false}} }\n};\n\nconst isValid = validate(schema, {{input_data}});\nif (!isValid) {\n  throw new ValidationError(\"{{validation_message:Invalid input data}\");\n}",
		description: "JSON schema validation pattern with configurable fields",
	},
}

// snippetTemplates is the pool generated snippets are drawn from.
var snippetTemplates = []sampleSnippet{
	{
		title:       "auth_middleware",
		content:     "function authenticate(req, res, next) {\n  const token = req.headers[\"{{auth_header:authorization}}\"];\n  if (!token) {\n    return res.status(401).json({{error_response:{\"error\": \"No token provided\"}}});\n  }\n  \n  jwt.verify(token, {{secret_key}}, (err, decoded) => {\n    if (err) {\n      return res.status({{error_status:403}}).json({{invalid_token_response}});\n    }\n    req.user = decoded;\n    next();\n  });\n}",
		description: "JWT authentication middleware with configurable responses",
	},
	{
		title:       "logging_config",
		content:     "const logger = winston.createLogger({\n  level: \"{{log_level:info}}\",\n  format: winston.format.combine(\n    winston.format.timestamp(),\n    winston.format.errors({ stack: true }),\n    winston.format.json()\n  ),\n  defaultMeta: { service: \"{{service_name}}\" },\n  transports: [\n    new winston.transports.File({ filename: \"{{error_log:error.log}}\", level: \"error\" }),\n    new winston.transports.File({ filename: \"{{combined_log:combined.log}}\" })\n  ]\n});",
		description: "Winston logger configuration with customizable settings",
	},
	{
		title:       "rate_limiter",
		content:     "const rateLimit = require(\"express-rate-limit\");\n\nconst limiter = rateLimit({\n  windowMs: {{window_minutes:15}} * 60 * 1000,\n  max: {{max_requests:100}},\n  message: \"{{rate_limit_message:Too many requests from this IP}}\",\n  standardHeaders: {{standard_headers:true}},\n  legacyHeaders: {{legacy_headers:false}},\n  handler: (req, res) => {\n    res.status({{rate_limit_status:429}}).json({\n      error: \"{{custom_error_message:Rate limit exceeded}}\",\n      retryAfter: {{retry_after:900}}\n    });\n  }\n});",
		description: "Express rate limiting middleware with configurable limits",
	},
	{
		title:       "cache_helper",
		content:     "class CacheHelper {\n  constructor() {\n    this.redis = new Redis({{redis_config}});\n    this.defaultTTL = {{default_ttl:3600}};\n  }\n\n  async get(key) {\n    const cached = await this.redis.get(\"{{key_prefix:app}}:\" + key);\n    return cached ? JSON.parse(cached) : null;\n  }\n\n  async set(key, value, ttl = this.defaultTTL) {\n    await this.redis.setex(\n      \"{{key_prefix:app}}:\" + key,\n      ttl || {{fallback_ttl:1800}},\n      JSON.stringify(value)\n    );\n  }\n}",
		description: "Redis cache helper with configurable prefixes and TTL",
	},
}

// tagVocabulary is the fixed set of tag names assigned to prompts and snippets.
var tagVocabulary = []string{
	"development", "testing", "documentation", "api", "database",
	"security", "performance", "frontend", "backend", "devops",
	"ai", "ml", "automation", "review", "analysis",
}
