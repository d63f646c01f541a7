package query

// GraphQL documents for V3-style subgraphs (Uniswap V3, PancakeSwap V3).
// These schemas expose "pools" with totalValueLockedUSD and signed swap
// amounts.

const v3Pools = `
query GetPools($first: Int!, $skip: Int!, $orderBy: String!, $orderDirection: String!) {
    pools(
        first: $first
        skip: $skip
        orderBy: $orderBy
        orderDirection: $orderDirection
    ) {
        id
        token0 {
            id
            symbol
            name
            decimals
        }
        token1 {
            id
            symbol
            name
            decimals
        }
        feeTier
        liquidity
        sqrtPrice
        token0Price
        token1Price
        volumeUSD
        txCount
        totalValueLockedUSD
        createdAtTimestamp
    }
}`

const v3Swaps = `
query GetSwaps($first: Int!, $skip: Int!, $poolId: String, $minAmountUSD: String!, $startTime: BigInt, $endTime: BigInt) {
    swaps(
        first: $first
        skip: $skip
        where: {
            pool_: { id: $poolId }
            amountUSD_gte: $minAmountUSD
            timestamp_gte: $startTime
            timestamp_lte: $endTime
        }
        orderBy: timestamp
        orderDirection: desc
    ) {
        id
        transaction {
            id
            blockNumber
            timestamp
        }
        timestamp
        pool {
            id
            token0 {
                symbol
            }
            token1 {
                symbol
            }
        }
        sender
        recipient
        amount0
        amount1
        amountUSD
    }
}`

const v3SwapsAll = `
query GetSwapsAll($first: Int!, $skip: Int!, $minAmountUSD: String!, $startTime: BigInt, $endTime: BigInt) {
    swaps(
        first: $first
        skip: $skip
        where: {
            amountUSD_gte: $minAmountUSD
            timestamp_gte: $startTime
            timestamp_lte: $endTime
        }
        orderBy: timestamp
        orderDirection: desc
    ) {
        id
        transaction {
            id
            blockNumber
            timestamp
        }
        timestamp
        pool {
            id
            token0 {
                symbol
            }
            token1 {
                symbol
            }
        }
        sender
        recipient
        amount0
        amount1
        amountUSD
    }
}`

const v3Tokens = `
query GetTokens($first: Int!, $skip: Int!, $orderBy: String!, $orderDirection: String!) {
    tokens(
        first: $first
        skip: $skip
        orderBy: $orderBy
        orderDirection: $orderDirection
    ) {
        id
        symbol
        name
        decimals
        totalSupply
        volume
        volumeUSD
        untrackedVolumeUSD
        feesUSD
        txCount
        poolCount
        totalValueLocked
        totalValueLockedUSD
        derivedETH
    }
}`

const v3PoolDayData = `
query GetPoolDayData($first: Int!, $skip: Int!, $poolId: String!) {
    poolDayDatas(
        first: $first
        skip: $skip
        where: { pool: $poolId }
        orderBy: date
        orderDirection: desc
    ) {
        id
        date
        pool {
            id
        }
        liquidity
        sqrtPrice
        token0Price
        token1Price
        volumeToken0
        volumeToken1
        volumeUSD
        tvlUSD
        feesUSD
        txCount
        open
        high
        low
        close
    }
}`

// GraphQL documents for V2-style subgraphs (PancakeSwap V2). These schemas
// expose "pairs" with reserveUSD and separate in/out swap amounts.

const v2Pairs = `
query GetPairs($first: Int!, $skip: Int!, $orderBy: String!, $orderDirection: String!) {
    pairs(
        first: $first
        skip: $skip
        orderBy: $orderBy
        orderDirection: $orderDirection
    ) {
        id
        token0 {
            id
            symbol
            name
            decimals
        }
        token1 {
            id
            symbol
            name
            decimals
        }
        reserve0
        reserve1
        reserveUSD
        token0Price
        token1Price
        volumeUSD
        txCount
        createdAtTimestamp
    }
}`

const v2Swaps = `
query GetSwaps($first: Int!, $skip: Int!, $pairId: String, $minAmountUSD: String!, $startTime: BigInt, $endTime: BigInt) {
    swaps(
        first: $first
        skip: $skip
        where: {
            pair_: { id: $pairId }
            amountUSD_gte: $minAmountUSD
            timestamp_gte: $startTime
            timestamp_lte: $endTime
        }
        orderBy: timestamp
        orderDirection: desc
    ) {
        id
        transaction {
            id
            blockNumber
            timestamp
        }
        timestamp
        pair {
            id
            token0 {
                symbol
            }
            token1 {
                symbol
            }
        }
        sender
        to
        amount0In
        amount1In
        amount0Out
        amount1Out
        amountUSD
    }
}`

const v2SwapsAll = `
query GetSwapsAll($first: Int!, $skip: Int!, $minAmountUSD: String!, $startTime: BigInt, $endTime: BigInt) {
    swaps(
        first: $first
        skip: $skip
        where: {
            amountUSD_gte: $minAmountUSD
            timestamp_gte: $startTime
            timestamp_lte: $endTime
        }
        orderBy: timestamp
        orderDirection: desc
    ) {
        id
        transaction {
            id
            blockNumber
            timestamp
        }
        timestamp
        pair {
            id
            token0 {
                symbol
            }
            token1 {
                symbol
            }
        }
        sender
        to
        amount0In
        amount1In
        amount0Out
        amount1Out
        amountUSD
    }
}`

const v2Tokens = `
query GetTokens($first: Int!, $skip: Int!, $orderBy: String!, $orderDirection: String!) {
    tokens(
        first: $first
        skip: $skip
        orderBy: $orderBy
        orderDirection: $orderDirection
    ) {
        id
        symbol
        name
        decimals
        tradeVolume
        tradeVolumeUSD
        untrackedVolumeUSD
        txCount
        totalLiquidity
        derivedETH
    }
}`

const v2PairDayData = `
query GetPairDayData($first: Int!, $skip: Int!, $pairId: String!) {
    pairDayDatas(
        first: $first
        skip: $skip
        where: { pairAddress: $pairId }
        orderBy: date
        orderDirection: desc
    ) {
        id
        date
        pairAddress
        reserve0
        reserve1
        reserveUSD
        dailyVolumeToken0
        dailyVolumeToken1
        dailyVolumeUSD
        dailyTxns
    }
}`
