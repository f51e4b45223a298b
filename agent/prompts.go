package agent

// Prompt templates use {name} placeholders expanded by llm.Expand.

const decisionPrompt = `Analyze this user question and determine which tools to use.

USER QUESTION: {user_question}

AVAILABLE TOOLS:
{available_tools}

Think step by step:
1. What type of information is needed?
2. Which tool(s) would be most appropriate?
3. Should multiple tools be used for comprehensive coverage?

MULTI-TOOL DECISION RULES:
- For current web topics (trends, news, popular lists) -> USE brave_search + webscraper
- For research topics -> USE arxiv_search + brave_search
- For URLs found in search results -> ALWAYS follow up with webscraper

Respond with ONE of these formats:

For single tool:
TOOL_USE: tool_name
QUERY: what to search for
REASONING: why this tool is needed

For multiple tools (PREFERRED for web content):
MULTI_TOOL_USE: tool1_name,tool2_name
QUERY1: query for first tool
QUERY2: query for second tool (use URLs from first tool results)
REASONING: why these tools are needed together

For no tools:
NO_TOOLS_NEEDED: I can answer with existing knowledge
REASONING: why no tools are needed

EXAMPLES:
- "best science channels" -> MULTI_TOOL_USE: brave_search,webscraper
- "latest AI research" -> MULTI_TOOL_USE: arxiv_search,brave_search
- "what is Python" -> NO_TOOLS_NEEDED (if confident in knowledge)`

const synthesisPrompt = `You are synthesizing information to answer a user's question using your knowledge and tool results.

USER QUESTION: {user_question}

TOOL RESULTS:
{tool_results}

INSTRUCTIONS:
1. Combine the tool results with your existing knowledge to provide a comprehensive answer
2. Always cite sources when using information from tool results
3. Be clear about what comes from external sources vs. your knowledge
4. If tool results are insufficient, acknowledge limitations but still provide helpful information
5. Structure your response clearly with proper formatting
6. For research papers, include key findings and implications
7. If multiple sources are used, synthesize them intelligently

Provide a well-structured, informative response:`
