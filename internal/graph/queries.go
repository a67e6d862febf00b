package graph

// Cypher executed by the store. Every user-supplied value is a bound
// parameter; relationship types in bulk upserts are validated identifiers
// spliced by the caller because Cypher cannot parameterize them.
const (
	ensureUserQuery = `
		MERGE (u:User {uid: $uid})
		ON CREATE SET
			u.email = $email,
			u.name = $name,
			u.createdAt = datetime($now)
		RETURN u.uid AS uid
	`

	listGraphsQuery = `
		MATCH (u:User {uid: $uid})-[:HAS_GRAPH]->(g:Graph)
		RETURN g.name AS name, g.createdAt AS createdAt
		ORDER BY g.name
	`

	createGraphQuery = `
		MATCH (u:User {uid: $uid})
		MERGE (u)-[:HAS_GRAPH]->(g:Graph {name: $name})
		ON CREATE SET g.createdAt = datetime($now)
		RETURN g.name AS name
	`

	fetchGraphQuery = `
		MATCH (u:User {uid: $uid})-[:HAS_GRAPH]->(g:Graph {name: $name})
		OPTIONAL MATCH (g)-[:CONTAINS|CONTAINS_THOUGHT]->(n)
		OPTIONAL MATCH (g)-[:CONTAINS|CONTAINS_THOUGHT]->(a)-[r]->(b)<-[:CONTAINS|CONTAINS_THOUGHT]-(g)
		RETURN g, collect(DISTINCT n) AS nodes, collect(DISTINCT r) AS relationships
	`

	appendThoughtQuery = `
		MATCH (u:User {uid: $uid})-[:HAS_GRAPH]->(g:Graph {name: $graphName})
		MERGE (g)-[:CONTAINS_THOUGHT]->(t:Thought {content: $text})
		ON CREATE SET t.id = $id, t.createdAt = datetime($now)
		RETURN t.id AS id
	`

	matchGraphQuery = `
		MATCH (u:User {uid: $uid})-[:HAS_GRAPH]->(g:Graph {name: $graphName})
		RETURN g.name AS name
	`

	upsertNodeQuery = `
		MATCH (u:User {uid: $uid})-[:HAS_GRAPH]->(g:Graph {name: $graphName})
		MERGE (g)-[:CONTAINS]->(n:Node {id: $id})
		ON CREATE SET n.createdAt = datetime($now)
		SET n += $props
		RETURN n.id AS id
	`

	// No-op when either endpoint is absent from the graph: the MATCH yields
	// no rows and nothing is written.
	upsertEdgeQueryFmt = `
		MATCH (u:User {uid: $uid})-[:HAS_GRAPH]->(g:Graph {name: $graphName})
		MATCH (g)-[:CONTAINS]->(src:Node {id: $source})
		MATCH (g)-[:CONTAINS]->(dst:Node {id: $target})
		MERGE (src)-[r:%s]->(dst)
		SET r += $props
		RETURN src.id AS source
	`
)
